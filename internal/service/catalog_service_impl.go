package service

import "github.com/alexanderramin/studyplan/internal/catalog"

type catalogService struct {
	topics catalog.Provider
}

func NewCatalogService(topics catalog.Provider) CatalogService {
	return &catalogService{topics: topics}
}

func (s *catalogService) Subjects() []catalog.SubjectSummary {
	return s.topics.Subjects()
}

// Preview resolves topics without scoring or persisting anything.
func (s *catalogService) Preview(req catalog.TopicRequest) (catalog.TopicSet, error) {
	return s.topics.Topics(req)
}
