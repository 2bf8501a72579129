package auth

import (
	"context"

	autherrors "go-crm/internal/auth/errors"
	"go-crm/internal/notification"
	"go-crm/internal/security"
	"go-crm/internal/shared/contextutil"
	"go-crm/internal/telemetry"

	"go.uber.org/zap"
)

func (s *service) ChangePassword(ctx context.Context, callerID, userID string, req ChangePasswordRequest) (err error) {
	defer func() { telemetry.RecordAuthEvent("change_password", err) }()

	log := contextutil.GetLogger(ctx, s.logger)

	if callerID != userID {
		log.Warn("change password for another user rejected",
			zap.String("caller_id", callerID),
			zap.String("target_id", userID),
		)
		return autherrors.ErrForbidden
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return mapRepositoryError(err)
	}

	if !security.ComparePassword(user.Password, req.OldPassword) {
		return autherrors.ErrInvalidCredentials
	}

	if err := security.CheckPasswordStrength(req.NewPassword, user.Email, user.Name); err != nil {
		return err
	}

	hashed, err := security.HashPassword(req.NewPassword)
	if err != nil {
		log.Error("change password hash failed", zap.Error(err))
		return err
	}
	user.Password = hashed

	if err := s.repo.Save(ctx, user); err != nil {
		log.Error("change password persist failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	log.Info("password changed", zap.String("user_id", userID))
	return nil
}

func (s *service) ForgotPassword(ctx context.Context, email string) (err error) {
	defer func() { telemetry.RecordAuthEvent("forgot_password", err) }()

	log := contextutil.GetLogger(ctx, s.logger)

	user, err := s.repo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return mapRepositoryError(err)
	}

	token, err := s.issueOneTimeToken(user, security.PurposeReset)
	if err != nil {
		return err
	}
	user.ForgotPasswordToken = &token

	if err := s.repo.Save(ctx, user); err != nil {
		log.Error("forgot password persist token failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := s.notifier.SendPasswordReset(ctx, user.Email, user.Name, user.ID.String(), token); err != nil {
		log.Error("forgot password send email failed", zap.Error(err))
		return notification.ErrEmailDeliveryFailed.WithCause(err)
	}

	log.Info("password reset issued", zap.String("user_id", user.ID.String()))
	return nil
}

func (s *service) ResetPassword(ctx context.Context, userID, token string, req ResetPasswordRequest) (err error) {
	defer func() { telemetry.RecordAuthEvent("reset_password", err) }()

	log := contextutil.GetLogger(ctx, s.logger)

	claims, err := s.tokens.Verify(token)
	if err != nil {
		return err
	}
	if claims.Purpose != security.PurposeReset || claims.UserID() != userID {
		return security.ErrInvalidToken
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return mapRepositoryError(err)
	}

	if tokenValue(user.ForgotPasswordToken) != token {
		return security.ErrInvalidToken
	}

	if err := s.tokens.CheckAge(claims, security.OneTimeTokenMaxAge); err != nil {
		return err
	}

	if err := security.CheckPasswordStrength(req.Password, user.Email, user.Name); err != nil {
		return err
	}

	hashed, err := security.HashPassword(req.Password)
	if err != nil {
		log.Error("reset password hash failed", zap.Error(err))
		return err
	}
	user.Password = hashed
	user.ForgotPasswordToken = nil

	if err := s.repo.Save(ctx, user); err != nil {
		log.Error("reset password persist failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	log.Info("password reset", zap.String("user_id", userID))
	return nil
}
