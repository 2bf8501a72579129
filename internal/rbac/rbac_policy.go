package rbac

import "go-crm/internal/domain"

const (
	ResourceOrganization = "organization"
	ResourceDepartment   = "department"
	ResourceUser         = "user"
	ResourceContact      = "contact"
	ResourceLead         = "lead"
	ResourceProduct      = "product"
	ResourceSale         = "sale"

	ActionCreate = "create"
	ActionRead   = "read"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionInvite = "invite"
)

type Permission struct {
	Resource string
	Action   string
}

var crud = []string{ActionCreate, ActionRead, ActionUpdate, ActionDelete}

func grant(resource string, actions ...string) []Permission {
	out := make([]Permission, 0, len(actions))
	for _, a := range actions {
		out = append(out, Permission{Resource: resource, Action: a})
	}
	return out
}

func join(groups ...[]Permission) []Permission {
	var out []Permission
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

var adminPermissions = join(
	grant(ResourceOrganization, ActionRead, ActionUpdate),
	grant(ResourceDepartment, crud...),
	grant(ResourceUser, ActionRead, ActionUpdate, ActionDelete, ActionInvite),
	grant(ResourceContact, crud...),
	grant(ResourceLead, crud...),
	grant(ResourceProduct, crud...),
	grant(ResourceSale, crud...),
)

// RolePermissions is the static permission table of the role catalog.
var RolePermissions = map[domain.RoleName][]Permission{
	domain.RoleOwner: join(adminPermissions, grant(ResourceOrganization, ActionDelete)),
	domain.RoleAdmin: adminPermissions,
	domain.RoleSales: join(
		grant(ResourceOrganization, ActionRead),
		grant(ResourceDepartment, ActionRead),
		grant(ResourceUser, ActionRead),
		grant(ResourceContact, ActionCreate, ActionRead, ActionUpdate),
		grant(ResourceLead, ActionCreate, ActionRead, ActionUpdate),
		grant(ResourceProduct, ActionRead),
		grant(ResourceSale, ActionCreate, ActionRead),
	),
	domain.RoleCustomerSupport: join(
		grant(ResourceOrganization, ActionRead),
		grant(ResourceDepartment, ActionRead),
		grant(ResourceUser, ActionRead),
		grant(ResourceContact, ActionRead, ActionUpdate),
		grant(ResourceLead, ActionRead, ActionUpdate),
		grant(ResourceProduct, ActionRead),
		grant(ResourceSale, ActionRead),
	),
	domain.RoleMarketing: join(
		grant(ResourceOrganization, ActionRead),
		grant(ResourceDepartment, ActionRead),
		grant(ResourceUser, ActionRead),
		grant(ResourceContact, ActionCreate, ActionRead, ActionUpdate),
		grant(ResourceLead, ActionCreate, ActionRead, ActionUpdate),
		grant(ResourceProduct, ActionRead),
	),
}

var roleDescriptions = map[domain.RoleName]string{
	domain.RoleOwner:           "Organization owner",
	domain.RoleAdmin:           "Organization administrator",
	domain.RoleSales:           "Sales representative",
	domain.RoleCustomerSupport: "Customer support agent",
	domain.RoleMarketing:       "Marketing team member",
}
