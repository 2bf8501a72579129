package rbac

import (
	"context"
	"sort"
	"sync"

	"go-crm/internal/domain"

	"github.com/casbin/casbin/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	LoadOrganizationPolicy(organizationID string) error
	Enforce(req domain.EnforceRequest) (bool, error)
	PermissionsFor(userID, organizationID string) ([]domain.PermissionResponse, error)
	ListRoles(ctx context.Context) ([]domain.RoleResponse, error)
	SeedRoles(ctx context.Context) error
}

type service struct {
	repo     Repository
	enforcer *casbin.Enforcer
	mu       sync.Mutex
	logger   *zap.Logger
}

func NewService(repo Repository, enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{
		repo:     repo,
		enforcer: enforcer,
		logger:   l,
	}
}

func (s *service) LoadOrganizationPolicy(organizationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadOrganizationPolicyUnlocked(organizationID)
}

// loadOrganizationPolicyUnlocked replaces the enforcer policy with the
// memberships of one organization plus the static permissions of their roles.
func (s *service) loadOrganizationPolicyUnlocked(organizationID string) error {
	s.enforcer.ClearPolicy()

	members, err := s.repo.GetMemberRoles(organizationID)
	if err != nil {
		return err
	}

	roles := map[domain.RoleName]bool{}
	for _, m := range members {
		if _, err := s.enforcer.AddGroupingPolicy(m.UserID, m.RoleName, organizationID); err != nil {
			return err
		}
		roles[domain.RoleName(m.RoleName)] = true
	}
	// ClearPolicy leaves role links from the previous load behind.
	if err := s.enforcer.BuildRoleLinks(); err != nil {
		return err
	}

	for role := range roles {
		for _, p := range RolePermissions[role] {
			if _, err := s.enforcer.AddPolicy(string(role), organizationID, p.Resource, p.Action); err != nil {
				return err
			}
		}
	}

	s.logger.Debug("rbac policy loaded",
		zap.String("organization_id", organizationID),
		zap.Int("members", len(members)),
		zap.Int("roles", len(roles)),
	)
	return nil
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadOrganizationPolicyUnlocked(req.OrganizationID); err != nil {
		return false, err
	}

	allowed, err := s.enforcer.Enforce(req.UserID, req.OrganizationID, req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("user_id", req.UserID),
			zap.String("organization_id", req.OrganizationID),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("user_id", req.UserID),
		zap.String("organization_id", req.OrganizationID),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

func (s *service) PermissionsFor(userID, organizationID string) ([]domain.PermissionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadOrganizationPolicyUnlocked(organizationID); err != nil {
		return nil, err
	}

	perms, err := s.enforcer.GetImplicitPermissionsForUser(userID, organizationID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.PermissionResponse, 0, len(perms))
	for _, p := range perms {
		// p = [role, domain, resource, action]
		if len(p) < 4 {
			continue
		}
		out = append(out, domain.PermissionResponse{Resource: p[2], Action: p[3]})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Resource != out[j].Resource {
			return out[i].Resource < out[j].Resource
		}
		return out[i].Action < out[j].Action
	})
	return out, nil
}

func (s *service) ListRoles(ctx context.Context) ([]domain.RoleResponse, error) {
	roles, err := s.repo.ListRoles(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.RoleResponse, 0, len(roles))
	for _, r := range roles {
		perms := RolePermissions[domain.RoleName(r.Name)]
		names := make([]string, 0, len(perms))
		for _, p := range perms {
			names = append(names, p.Resource+":"+p.Action)
		}
		out = append(out, domain.RoleResponse{
			ID:          r.ID.String(),
			Name:        r.Name,
			Description: r.Description,
			Permissions: names,
		})
	}
	return out, nil
}

// SeedRoles inserts any catalog role that is missing. Existing rows are left alone.
func (s *service) SeedRoles(ctx context.Context) error {
	roles := make([]Role, 0, len(domain.RoleCatalog))
	for _, name := range domain.RoleCatalog {
		roles = append(roles, Role{
			ID:          uuid.New(),
			Name:        string(name),
			Description: roleDescriptions[name],
		})
	}
	if err := s.repo.EnsureRoles(ctx, roles); err != nil {
		s.logger.Error("seed roles failed", zap.Error(err))
		return err
	}
	s.logger.Info("role catalog seeded", zap.Int("roles", len(roles)))
	return nil
}
