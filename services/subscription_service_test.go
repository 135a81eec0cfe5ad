package services

import (
	"columns-cms/models"
)

func (s *ServicesTestSuite) TestSubscribeTwiceKeepsBoth() {
	column := s.createColumn("Tech", []*models.User{s.writer}, []*models.User{s.moderator})

	first, err := s.subscriptions.Subscribe(s.reader.ID, column.ID)
	s.Require().NoError(err)
	second, err := s.subscriptions.Subscribe(s.reader.ID, column.ID)
	s.Require().NoError(err)
	s.NotEqual(first.ID, second.ID)

	count, err := s.subscriptionRepo.Count(s.reader.ID, column.ID)
	s.Require().NoError(err)
	s.Equal(int64(2), count)

	subscriptions, err := s.subscriptions.GetSubscriptions(s.reader.ID)
	s.Require().NoError(err)
	s.Require().Len(subscriptions, 2)
	s.Equal("Tech", subscriptions[0].Column.Name)
}

func (s *ServicesTestSuite) TestSubscribeUnknownColumn() {
	var notFound models.ErrorNotFound
	_, err := s.subscriptions.Subscribe(s.reader.ID, 4242)
	s.ErrorAs(err, &notFound)

	_, err = s.subscriptions.EnsureSubscribed(s.reader.ID, 4242)
	s.ErrorAs(err, &notFound)
}

func (s *ServicesTestSuite) TestIsSubscribedDoesNotMutate() {
	column := s.createColumn("Tech", []*models.User{s.writer}, []*models.User{s.moderator})

	for i := 0; i < 2; i++ {
		subscribed, err := s.subscriptions.IsSubscribed(s.reader.ID, column.ID)
		s.Require().NoError(err)
		s.False(subscribed)
	}

	count, err := s.subscriptionRepo.Count(s.reader.ID, column.ID)
	s.Require().NoError(err)
	s.Zero(count)
}

func (s *ServicesTestSuite) TestEnsureSubscribedIsIdempotent() {
	column := s.createColumn("Tech", []*models.User{s.writer}, []*models.User{s.moderator})

	first, err := s.subscriptions.EnsureSubscribed(s.reader.ID, column.ID)
	s.Require().NoError(err)
	second, err := s.subscriptions.EnsureSubscribed(s.reader.ID, column.ID)
	s.Require().NoError(err)
	s.Equal(first.ID, second.ID)

	subscribed, err := s.subscriptions.IsSubscribed(s.reader.ID, column.ID)
	s.Require().NoError(err)
	s.True(subscribed)

	count, err := s.subscriptionRepo.Count(s.reader.ID, column.ID)
	s.Require().NoError(err)
	s.Equal(int64(1), count)
}
