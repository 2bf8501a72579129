package lead

import (
	"errors"

	leaderrors "go-crm/internal/lead/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return leaderrors.ErrLeadNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			switch pgErr.ConstraintName {
			case "uq_leads_email":
				return leaderrors.ErrLeadEmailExists
			case "uq_leads_phone":
				return leaderrors.ErrLeadPhoneExists
			}
		case "23503":
			return leaderrors.ErrLeadHasSales
		}
	}

	return err
}
