package tenant

import "gorm.io/gorm"

// Scope restricts a query to one organization.
func Scope(organizationID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("organization_id = ?", organizationID)
	}
}

// ScopeTable is Scope for queries that join several tenant tables.
func ScopeTable(table, organizationID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(table+".organization_id = ?", organizationID)
	}
}
