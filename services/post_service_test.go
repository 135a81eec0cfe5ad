package services

import (
	"columns-cms/models"
	"columns-cms/testutil"
)

func (s *ServicesTestSuite) TestCreatePostStartsAsDraft() {
	column := s.createColumn("Tech", []*models.User{s.writer}, []*models.User{s.moderator})

	post, err := s.posts.CreatePost(models.CreatePostRequest{
		Title:    "Hi",
		Text:     "body",
		ColumnID: column.ID,
	}, s.writer.ID)
	s.Require().NoError(err)

	s.False(post.Public)
	s.Equal(models.VisibilityDraft, post.Visibility())
	s.Equal(s.writer.ID, post.WriterID)
	s.Equal(column.ID, post.ColumnID)
}

func (s *ServicesTestSuite) TestCreatePostValidation() {
	otherWriter := testutil.CreateUser(s.T(), s.db, "wendy", models.RoleWriter)
	column := s.createColumn("Tech", []*models.User{s.writer}, []*models.User{s.moderator})

	_, err := s.posts.CreatePost(models.CreatePostRequest{Title: "Hi", Text: "body"}, s.writer.ID)
	s.assertValidation(err, "column", "Please select a column")

	_, err = s.posts.CreatePost(models.CreatePostRequest{Title: "Hi", Text: "body", ColumnID: column.ID}, otherWriter.ID)
	s.assertValidation(err, "column", "Please select a column you can write for")

	_, err = s.posts.CreatePost(models.CreatePostRequest{Title: "Hi", Text: "body", ColumnID: 4242}, s.writer.ID)
	s.assertValidation(err, "column", "Please select a column you can write for")

	_, err = s.posts.CreatePost(models.CreatePostRequest{Title: " ", Text: "body", ColumnID: column.ID}, s.writer.ID)
	s.assertValidation(err, "title", "")
}

func (s *ServicesTestSuite) TestCreatePostRequiresWriterRole() {
	column := s.createColumn("Tech", []*models.User{s.writer}, []*models.User{s.moderator})

	_, err := s.posts.CreatePost(models.CreatePostRequest{Title: "Hi", Text: "body", ColumnID: column.ID}, s.moderator.ID)
	s.assertDenied(err, "wrong role")

	// a member demoted after assignment loses access at once
	_, err = s.users.SetRole(s.writer.ID, models.RoleReader)
	s.Require().NoError(err)
	_, err = s.posts.CreatePost(models.CreatePostRequest{Title: "Hi", Text: "body", ColumnID: column.ID}, s.writer.ID)
	s.assertDenied(err, "wrong role")
}

func (s *ServicesTestSuite) TestMarkPublic() {
	column := s.createColumn("Tech", []*models.User{s.writer}, []*models.User{s.moderator})
	post := s.createPost(column, "Hi")

	updated, err := s.posts.MarkPublic(post.ID, s.moderator.ID)
	s.Require().NoError(err)
	s.True(updated.Public)

	again, err := s.posts.MarkPublic(post.ID, s.moderator.ID)
	s.Require().NoError(err)
	s.True(again.Public)

	stored, err := s.posts.GetPost(post.ID)
	s.Require().NoError(err)
	s.Equal(models.VisibilityPublic, stored.Visibility())
}

func (s *ServicesTestSuite) TestMarkPublicDenied() {
	outsider := testutil.CreateUser(s.T(), s.db, "max", models.RoleModerator)
	column := s.createColumn("Tech", []*models.User{s.writer}, []*models.User{s.moderator})
	post := s.createPost(column, "Hi")

	_, err := s.posts.MarkPublic(post.ID, outsider.ID)
	s.assertDenied(err, "not assigned to this column")

	_, err = s.posts.MarkPublic(post.ID, s.writer.ID)
	s.assertDenied(err, "wrong role")

	var notFound models.ErrorNotFound
	_, err = s.posts.MarkPublic(4242, s.moderator.ID)
	s.ErrorAs(err, &notFound)

	stored, err := s.posts.GetPost(post.ID)
	s.Require().NoError(err)
	s.False(stored.Public)
}

func (s *ServicesTestSuite) TestGetModeratorPosts() {
	otherModerator := testutil.CreateUser(s.T(), s.db, "max", models.RoleModerator)
	tech := s.createColumn("Tech", []*models.User{s.writer}, []*models.User{s.moderator})
	food := s.createColumn("Food", []*models.User{s.writer}, []*models.User{s.moderator, otherModerator})
	travel := s.createColumn("Travel", []*models.User{s.writer}, []*models.User{otherModerator})

	first := s.createPost(tech, "one")
	second := s.createPost(food, "two")
	s.createPost(travel, "three")

	posts, err := s.posts.GetModeratorPosts(s.moderator.ID)
	s.Require().NoError(err)
	s.Require().Len(posts, 2)
	s.Equal(first.ID, posts[0].ID)
	s.Equal(second.ID, posts[1].ID)

	posts, err = s.posts.GetModeratorPosts(otherModerator.ID)
	s.Require().NoError(err)
	s.Len(posts, 2)

	_, err = s.posts.GetModeratorPosts(s.reader.ID)
	s.assertDenied(err, "wrong role")
}

func (s *ServicesTestSuite) TestGetPublicPosts() {
	column := s.createColumn("Tech", []*models.User{s.writer}, []*models.User{s.moderator})
	draft := s.createPost(column, "draft")
	published := s.createPost(column, "published")
	_, err := s.posts.MarkPublic(published.ID, s.moderator.ID)
	s.Require().NoError(err)

	posts, err := s.posts.GetPublicPosts(column.ID)
	s.Require().NoError(err)
	s.Require().Len(posts, 1)
	s.Equal(published.ID, posts[0].ID)
	s.NotEqual(draft.ID, posts[0].ID)

	var notFound models.ErrorNotFound
	_, err = s.posts.GetPublicPosts(4242)
	s.ErrorAs(err, &notFound)
}

func (s *ServicesTestSuite) TestPublishingScenario() {
	secondModerator := testutil.CreateUser(s.T(), s.db, "max", models.RoleModerator)

	column := s.createColumn("Tech", []*models.User{s.writer}, []*models.User{s.moderator})

	post, err := s.posts.CreatePost(models.CreatePostRequest{Title: "Hi", Text: "body", ColumnID: column.ID}, s.writer.ID)
	s.Require().NoError(err)
	s.False(post.Public)

	post, err = s.posts.MarkPublic(post.ID, s.moderator.ID)
	s.Require().NoError(err)
	s.True(post.Public)

	_, err = s.posts.MarkPublic(post.ID, secondModerator.ID)
	s.assertDenied(err, "not assigned to this column")
}
