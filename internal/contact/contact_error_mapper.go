package contact

import (
	"errors"

	contacterrors "go-crm/internal/contact/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return contacterrors.ErrContactNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "uq_contacts_email":
			return contacterrors.ErrContactEmailExists
		case "uq_contacts_phone":
			return contacterrors.ErrContactPhoneExists
		}
	}

	return err
}
