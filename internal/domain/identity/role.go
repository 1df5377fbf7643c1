package identity

// Role is the closed set of user roles in the system
type Role string

const (
	RoleManager Role = "manager" // full administration
	RoleTrader  Role = "trader"  // sales operations
	RoleFinance Role = "finance" // finance and inventory
	RoleAuditor Role = "auditor" // read-only access
)

// IsValid checks if the role is a valid Role
func (r Role) IsValid() bool {
	switch r {
	case RoleManager, RoleTrader, RoleFinance, RoleAuditor:
		return true
	}
	return false
}

// String returns the string representation of Role
func (r Role) String() string {
	return string(r)
}

// EarnsCommission returns true for roles whose sales accrue commission
func (r Role) EarnsCommission() bool {
	return r == RoleTrader || r == RoleManager
}

// Capability is a named action a role may perform
type Capability string

const (
	CapManagePurchases   Capability = "purchases:manage"
	CapManageInventory   Capability = "inventory:manage"
	CapReserveVehicles   Capability = "inventory:reserve"
	CapManageCustomers   Capability = "customers:manage"
	CapManageSales       Capability = "sales:manage"
	CapRecordPayments    Capability = "payments:record"
	CapManageCommissions Capability = "commissions:manage"
	CapViewReports       Capability = "reports:view"
)

// roleCapabilities is the capability table. Role checks go through
// Role.Can, never through string comparison at call sites.
var roleCapabilities = map[Role]map[Capability]bool{
	RoleManager: {
		CapManagePurchases:   true,
		CapManageInventory:   true,
		CapReserveVehicles:   true,
		CapManageCustomers:   true,
		CapManageSales:       true,
		CapRecordPayments:    true,
		CapManageCommissions: true,
		CapViewReports:       true,
	},
	RoleTrader: {
		CapReserveVehicles: true,
		CapManageCustomers: true,
		CapManageSales:     true,
		CapViewReports:     true,
	},
	RoleFinance: {
		CapManagePurchases: true,
		CapManageInventory: true,
		CapRecordPayments:  true,
		CapViewReports:     true,
	},
	RoleAuditor: {
		CapViewReports: true,
	},
}

// Can returns true if the role grants the capability
func (r Role) Can(capability Capability) bool {
	caps, ok := roleCapabilities[r]
	if !ok {
		return false
	}
	return caps[capability]
}
