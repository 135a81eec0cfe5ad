package services

import (
	"columns-cms/models"
)

func (s *ServicesTestSuite) TestCreateUserStartsAsReader() {
	user, err := s.users.CreateUser("New@Example.com", "newbie", "secret123")
	s.Require().NoError(err)
	s.Equal("new@example.com", user.Email)
	s.NotEqual("secret123", user.Password)

	role, err := s.users.GetRole(user.ID)
	s.Require().NoError(err)
	s.Equal(models.RoleReader, role)

	count, err := s.userRepo.CountProfiles(user.ID)
	s.Require().NoError(err)
	s.Equal(int64(1), count)
}

func (s *ServicesTestSuite) TestCreateUserRejectsDuplicates() {
	_, err := s.users.CreateUser("dup@example.com", "dup", "secret123")
	s.Require().NoError(err)

	var conflict models.ErrorConflict

	_, err = s.users.CreateUser("DUP@example.com", "other", "secret123")
	s.Require().ErrorAs(err, &conflict)
	s.Equal("email", conflict.Field)

	_, err = s.users.CreateUser("other@example.com", "dup", "secret123")
	s.Require().ErrorAs(err, &conflict)
	s.Equal("username", conflict.Field)
}

func (s *ServicesTestSuite) TestCreateUserRequiresFields() {
	_, err := s.users.CreateUser("", "someone", "secret123")
	s.assertValidation(err, "email", "")

	_, err = s.users.CreateUser("a@example.com", " ", "secret123")
	s.assertValidation(err, "username", "")

	_, err = s.users.CreateUser("a@example.com", "someone", "")
	s.assertValidation(err, "password", "")
}

func (s *ServicesTestSuite) TestSetRole() {
	user, err := s.users.SetRole(s.reader.ID, models.RoleWriter)
	s.Require().NoError(err)
	s.Equal(models.RoleWriter, user.Role())

	_, err = s.users.SetRole(s.reader.ID, models.UserRole("Admin"))
	s.assertValidation(err, "role", "")

	var notFound models.ErrorNotFound
	_, err = s.users.SetRole(9999, models.RoleWriter)
	s.ErrorAs(err, &notFound)
}

func (s *ServicesTestSuite) TestAssignRoleRequiresCoordinator() {
	_, err := s.users.AssignRole(s.writer.ID, s.reader.ID, models.RoleModerator)
	s.assertDenied(err, "wrong role")

	user, err := s.users.AssignRole(s.coordinator.ID, s.reader.ID, models.RoleModerator)
	s.Require().NoError(err)
	s.Equal(models.RoleModerator, user.Role())
}

func (s *ServicesTestSuite) TestListUsersByRole() {
	users, err := s.users.ListUsersByRole(s.coordinator.ID, models.RoleWriter)
	s.Require().NoError(err)
	s.Require().Len(users, 1)
	s.Equal(s.writer.ID, users[0].ID)

	_, err = s.users.ListUsersByRole(s.reader.ID, models.RoleWriter)
	s.assertDenied(err, "wrong role")
}

func (s *ServicesTestSuite) TestRegisterAndLogin() {
	registered, err := s.auth.Register(models.RegisterRequest{
		Username: "lena",
		Email:    "lena@example.com",
		Password: "password123",
	})
	s.Require().NoError(err)
	s.NotEmpty(registered.Token)
	s.Equal(models.RoleReader, registered.User.Role())

	loggedIn, err := s.auth.Login(models.LoginRequest{Email: "lena@example.com", Password: "password123"})
	s.Require().NoError(err)
	s.NotEmpty(loggedIn.Token)
	s.Equal(registered.User.ID, loggedIn.User.ID)

	var unauthorized models.ErrorUnauthorized
	_, err = s.auth.Login(models.LoginRequest{Email: "lena@example.com", Password: "wrong"})
	s.ErrorAs(err, &unauthorized)

	_, err = s.auth.Login(models.LoginRequest{Email: "nobody@example.com", Password: "password123"})
	s.ErrorAs(err, &unauthorized)
}
