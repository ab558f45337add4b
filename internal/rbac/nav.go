package rbac

// Entry is a single navigation target (a routed screen in the console).
type Entry struct {
	ID       string
	Title    string
	Route    string
	Required []Role
}

// Section is a navigation group. A section is visible when the user's role
// is in its Required set; entries inside it are gated individually on top.
type Section struct {
	ID       string
	Title    string
	Required []Role
	Entries  []Entry
}

var (
	everyone = []Role{RoleAdmin, RoleWarehouseManager, RoleTeamLead, RoleApprover}
	managers = []Role{RoleAdmin, RoleWarehouseManager}
)

// navTable is the complete navigation policy. This is the only place role
// requirements are declared; screens and commands consult it through
// CanSee/VisibleNav instead of carrying their own role lists.
var navTable = []Section{
	{
		ID:       "dashboard",
		Title:    "Dashboard",
		Required: everyone,
		Entries: []Entry{
			{ID: "dashboard", Title: "Dashboard", Route: "/dashboard", Required: everyone},
		},
	},
	{
		ID:       "inventory",
		Title:    "Inventory",
		Required: []Role{RoleAdmin, RoleWarehouseManager, RoleTeamLead},
		Entries: []Entry{
			{ID: "inventory.items", Title: "Items", Route: "/inventory/items", Required: []Role{RoleAdmin, RoleWarehouseManager, RoleTeamLead}},
			{ID: "inventory.categories", Title: "Categories", Route: "/inventory/categories", Required: managers},
			{ID: "inventory.warehouses", Title: "Warehouses", Route: "/inventory/warehouses", Required: managers},
			{ID: "inventory.distribution", Title: "Distribution", Route: "/inventory/distribution", Required: []Role{RoleAdmin, RoleWarehouseManager, RoleTeamLead}},
		},
	},
	{
		ID:       "procurement",
		Title:    "Procurement",
		Required: []Role{RoleAdmin, RoleWarehouseManager, RoleApprover},
		Entries: []Entry{
			{ID: "procurement.suppliers", Title: "Suppliers", Route: "/procurement/suppliers", Required: managers},
			{ID: "procurement.purchase-orders", Title: "Purchase Orders", Route: "/procurement/purchase-orders", Required: managers},
			{ID: "procurement.requests", Title: "Requests", Route: "/procurement/requests", Required: []Role{RoleAdmin, RoleWarehouseManager, RoleApprover}},
		},
	},
	{
		ID:       "sales",
		Title:    "Sales",
		Required: managers,
		Entries: []Entry{
			{ID: "sales.customers", Title: "Customers", Route: "/sales/customers", Required: managers},
			{ID: "sales.orders", Title: "Orders", Route: "/sales/orders", Required: managers},
			{ID: "sales.payments", Title: "Payments", Route: "/sales/payments", Required: managers},
		},
	},
	{
		ID:       "reports",
		Title:    "Reports",
		Required: managers,
		Entries: []Entry{
			{ID: "reports.sales", Title: "Sales Reports", Route: "/reports/sales", Required: managers},
			{ID: "reports.inventory", Title: "Inventory Reports", Route: "/reports/inventory", Required: managers},
			{ID: "reports.procurement", Title: "Procurement Reports", Route: "/reports/procurement", Required: managers},
		},
	},
	{
		ID:       "settings",
		Title:    "Settings",
		Required: []Role{RoleAdmin},
		Entries: []Entry{
			{ID: "settings.company", Title: "Company", Route: "/settings/company", Required: []Role{RoleAdmin}},
			{ID: "settings.users", Title: "Users & Roles", Route: "/settings/users", Required: []Role{RoleAdmin}},
			{ID: "settings.notifications", Title: "Notifications", Route: "/settings/notifications", Required: []Role{RoleAdmin}},
			{ID: "settings.security", Title: "Security", Route: "/settings/security", Required: []Role{RoleAdmin}},
			{ID: "settings.integrations", Title: "Integrations", Route: "/settings/integrations", Required: []Role{RoleAdmin}},
			{ID: "settings.printing", Title: "Printing", Route: "/settings/printing", Required: []Role{RoleAdmin}},
			{ID: "settings.billing", Title: "Billing", Route: "/settings/billing", Required: []Role{RoleAdmin}},
		},
	},
}

// Nav returns the full navigation table.
func Nav() []Section {
	return navTable
}

// VisibleNav filters the navigation table for a role. Sections the role may
// not see are dropped entirely; visible sections keep only the entries the
// role may see. An invalid role gets an empty result.
func VisibleNav(role Role) []Section {
	var out []Section
	for _, section := range navTable {
		if !CanSee(role, section.Required) {
			continue
		}
		visible := Section{ID: section.ID, Title: section.Title, Required: section.Required}
		for _, entry := range section.Entries {
			if CanSee(role, entry.Required) {
				visible.Entries = append(visible.Entries, entry)
			}
		}
		if len(visible.Entries) > 0 {
			out = append(out, visible)
		}
	}
	return out
}

// FindEntry looks up a navigation entry by ID. The second return is false
// when the ID is not in the table.
func FindEntry(id string) (Entry, bool) {
	for _, section := range navTable {
		for _, entry := range section.Entries {
			if entry.ID == id {
				return entry, true
			}
		}
	}
	return Entry{}, false
}
