package main

import (
	"fmt"

	"columns-cms/models"
	"columns-cms/repositories"
	"columns-cms/services"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// runCommand executes an administrative subcommand against db.
func runCommand(db *gorm.DB, args []string) error {
	switch args[0] {
	case "setrole":
		if len(args) != 3 {
			return errors.New(usage)
		}
		return setRole(db, args[1], models.UserRole(args[2]))
	default:
		return errors.Errorf("unknown command %q\n%s", args[0], usage)
	}
}

func setRole(db *gorm.DB, email string, role models.UserRole) error {
	userRepo := repositories.NewUserRepository(db)
	user, err := userRepo.GetByEmail(email)
	if err != nil {
		return errors.Wrapf(err, "load user %s", email)
	}

	updated, err := services.NewUserService(userRepo).SetRole(user.ID, role)
	if err != nil {
		return err
	}

	fmt.Printf("%s is now %s\n", updated.Email, updated.Role())
	return nil
}
