package trivia

// BuildCategoryIndex derives the id→label map and the ordered label list
// from the category collection. Pure and cheap enough to rebuild on every
// request; the collection is owned elsewhere.
func BuildCategoryIndex(categories []Category) (byID map[int]string, labels []string) {
	byID = make(map[int]string, len(categories))
	labels = make([]string, 0, len(categories))
	for _, c := range categories {
		byID[c.ID] = c.Type
		labels = append(labels, c.Type)
	}
	return byID, labels
}
