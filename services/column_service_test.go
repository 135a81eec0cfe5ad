package services

import (
	"columns-cms/models"
	"columns-cms/testutil"
)

func (s *ServicesTestSuite) TestCreateColumn() {
	column := s.createColumn("Tech", []*models.User{s.writer}, []*models.User{s.moderator})

	s.Equal("Tech", column.Name)
	s.Equal(s.coordinator.ID, column.CoordinatorID)
	s.Equal(s.coordinator.ID, column.Coordinator.ID)
	s.Require().Len(column.Writers, 1)
	s.Equal(s.writer.ID, column.Writers[0].ID)
	s.Require().Len(column.Moderators, 1)
	s.Equal(s.moderator.ID, column.Moderators[0].ID)
}

func (s *ServicesTestSuite) TestCreateColumnIgnoresDuplicateSelections() {
	column, err := s.columns.CreateColumn(models.CreateColumnRequest{
		Name:         "Tech",
		WriterIDs:    []uint{s.writer.ID, s.writer.ID},
		ModeratorIDs: []uint{s.moderator.ID},
	}, s.coordinator.ID)
	s.Require().NoError(err)
	s.Len(column.Writers, 1)
}

func (s *ServicesTestSuite) TestCreateColumnValidation() {
	otherWriter := testutil.CreateUser(s.T(), s.db, "wendy", models.RoleWriter)

	tests := []struct {
		name    string
		req     models.CreateColumnRequest
		field   string
		message string
	}{
		{
			name:    "no writers",
			req:     models.CreateColumnRequest{Name: "Tech", ModeratorIDs: []uint{s.moderator.ID}},
			field:   "writers",
			message: "please select a writer",
		},
		{
			name:    "no moderators",
			req:     models.CreateColumnRequest{Name: "Tech", WriterIDs: []uint{s.writer.ID}},
			field:   "moderators",
			message: "please select a moderator",
		},
		{
			name:    "reader among writers",
			req:     models.CreateColumnRequest{Name: "Tech", WriterIDs: []uint{otherWriter.ID, s.reader.ID}, ModeratorIDs: []uint{s.moderator.ID}},
			field:   "writers",
			message: "Not all selected user are writers",
		},
		{
			name:    "writer among moderators",
			req:     models.CreateColumnRequest{Name: "Tech", WriterIDs: []uint{s.writer.ID}, ModeratorIDs: []uint{s.moderator.ID, s.writer.ID}},
			field:   "moderators",
			message: "Not all selected user are moderators",
		},
		{
			name:  "unknown writer",
			req:   models.CreateColumnRequest{Name: "Tech", WriterIDs: []uint{9999}, ModeratorIDs: []uint{s.moderator.ID}},
			field: "writers",
		},
		{
			name:  "blank name",
			req:   models.CreateColumnRequest{Name: "  ", WriterIDs: []uint{s.writer.ID}, ModeratorIDs: []uint{s.moderator.ID}},
			field: "name",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.columns.CreateColumn(tt.req, s.coordinator.ID)
			s.assertValidation(err, tt.field, tt.message)
		})
	}

	_, total, err := s.columns.GetColumns(models.ColumnListParams{Page: 1, Limit: 10})
	s.Require().NoError(err)
	s.Equal(int64(0), total)
}

func (s *ServicesTestSuite) TestCreateColumnRequiresCoordinator() {
	_, err := s.columns.CreateColumn(models.CreateColumnRequest{
		Name:         "Tech",
		WriterIDs:    []uint{s.writer.ID},
		ModeratorIDs: []uint{s.moderator.ID},
	}, s.writer.ID)
	s.assertDenied(err, "wrong role")
}

func (s *ServicesTestSuite) TestGetColumnsPaginates() {
	for _, name := range []string{"A", "B", "C"} {
		s.createColumn(name, []*models.User{s.writer}, []*models.User{s.moderator})
	}

	columns, total, err := s.columns.GetColumns(models.ColumnListParams{Page: 2, Limit: 2})
	s.Require().NoError(err)
	s.Equal(int64(3), total)
	s.Require().Len(columns, 1)
	s.Equal("C", columns[0].Name)
}

func (s *ServicesTestSuite) TestGetColumnNotFound() {
	var notFound models.ErrorNotFound
	_, err := s.columns.GetColumn(4242)
	s.ErrorAs(err, &notFound)
}

func (s *ServicesTestSuite) TestGetColumnDetailDoesNotSubscribe() {
	column := s.createColumn("Tech", []*models.User{s.writer}, []*models.User{s.moderator})

	detail, err := s.columns.GetColumnDetail(column.ID, s.reader.ID)
	s.Require().NoError(err)
	s.False(detail.Subscribed)

	detail, err = s.columns.GetColumnDetail(column.ID, s.reader.ID)
	s.Require().NoError(err)
	s.False(detail.Subscribed)

	_, err = s.subscriptions.Subscribe(s.reader.ID, column.ID)
	s.Require().NoError(err)

	detail, err = s.columns.GetColumnDetail(column.ID, s.reader.ID)
	s.Require().NoError(err)
	s.True(detail.Subscribed)
}

func (s *ServicesTestSuite) TestGetWriterColumns() {
	otherWriter := testutil.CreateUser(s.T(), s.db, "wendy", models.RoleWriter)
	tech := s.createColumn("Tech", []*models.User{s.writer}, []*models.User{s.moderator})
	s.createColumn("Food", []*models.User{otherWriter}, []*models.User{s.moderator})

	columns, err := s.columns.GetWriterColumns(s.writer.ID)
	s.Require().NoError(err)
	s.Require().Len(columns, 1)
	s.Equal(tech.ID, columns[0].ID)

	_, err = s.columns.GetWriterColumns(s.moderator.ID)
	s.assertDenied(err, "wrong role")
}

func (s *ServicesTestSuite) TestDeleteColumnCascades() {
	column := s.createColumn("Tech", []*models.User{s.writer}, []*models.User{s.moderator})
	keep := s.createColumn("Food", []*models.User{s.writer}, []*models.User{s.moderator})
	post := s.createPost(column, "Hi")
	kept := s.createPost(keep, "Stay")
	_, err := s.subscriptions.Subscribe(s.reader.ID, column.ID)
	s.Require().NoError(err)

	s.Require().NoError(s.columns.DeleteColumn(column.ID, s.coordinator.ID))

	var notFound models.ErrorNotFound
	_, err = s.columns.GetColumn(column.ID)
	s.ErrorAs(err, &notFound)
	_, err = s.posts.GetPost(post.ID)
	s.ErrorAs(err, &notFound)

	subscribed, err := s.subscriptions.IsSubscribed(s.reader.ID, column.ID)
	s.Require().NoError(err)
	s.False(subscribed)

	var memberships int64
	s.Require().NoError(s.db.Table("column_writers").Where("column_id = ?", column.ID).Count(&memberships).Error)
	s.Zero(memberships)
	s.Require().NoError(s.db.Table("column_moderators").Where("column_id = ?", column.ID).Count(&memberships).Error)
	s.Zero(memberships)

	_, err = s.posts.GetPost(kept.ID)
	s.NoError(err)
}

func (s *ServicesTestSuite) TestDeleteColumnRequiresOwner() {
	column := s.createColumn("Tech", []*models.User{s.writer}, []*models.User{s.moderator})
	otherCoordinator := testutil.CreateUser(s.T(), s.db, "cody", models.RoleCoordinator)

	err := s.columns.DeleteColumn(column.ID, otherCoordinator.ID)
	s.assertDenied(err, "not the coordinator of this column")

	err = s.columns.DeleteColumn(column.ID, s.writer.ID)
	s.assertDenied(err, "wrong role")

	var notFound models.ErrorNotFound
	err = s.columns.DeleteColumn(4242, s.coordinator.ID)
	s.ErrorAs(err, &notFound)

	_, err = s.columns.GetColumn(column.ID)
	s.NoError(err)
}
