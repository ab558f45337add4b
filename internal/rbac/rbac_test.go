package rbac

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanSee(t *testing.T) {
	managerSet := []Role{RoleAdmin, RoleWarehouseManager}

	tests := []struct {
		name     string
		role     Role
		required []Role
		want     bool
	}{
		{"member of set", RoleAdmin, managerSet, true},
		{"second member of set", RoleWarehouseManager, managerSet, true},
		{"role outside set", RoleTeamLead, managerSet, false},
		{"approver outside set", RoleApprover, managerSet, false},
		{"absent role", RoleUnknown, managerSet, false},
		{"absent role empty set", RoleUnknown, nil, false},
		{"empty required set means nobody", RoleAdmin, nil, false},
		{"unknown role string", Role("superuser"), managerSet, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanSee(tt.role, tt.required))
		})
	}
}

func TestCanSeeUnknownRequiredEntryNeverMatches(t *testing.T) {
	// A required set carrying a role string outside the closed enum must
	// never match, even for a user whose role string is identical.
	required := []Role{Role("auditor")}

	assert.False(t, CanSee(Role("auditor"), required))
	for _, role := range Roles() {
		assert.False(t, CanSee(role, required), "role %s should not match unknown requirement", role)
	}
}

func TestCanSeeEveryValidRoleMatchesItself(t *testing.T) {
	for _, role := range Roles() {
		assert.True(t, CanSee(role, []Role{role}))
	}
}

func TestParseRole(t *testing.T) {
	assert.Equal(t, RoleAdmin, ParseRole("admin"))
	assert.Equal(t, RoleWarehouseManager, ParseRole("warehouse_manager"))
	assert.Equal(t, RoleTeamLead, ParseRole("team_lead"))
	assert.Equal(t, RoleApprover, ParseRole("approver"))

	assert.Equal(t, RoleUnknown, ParseRole(""))
	assert.Equal(t, RoleUnknown, ParseRole("Admin"))
	assert.Equal(t, RoleUnknown, ParseRole("superuser"))
	assert.False(t, ParseRole("supervisor").Valid())
}

func TestVisibleNavTeamLead(t *testing.T) {
	sections := VisibleNav(RoleTeamLead)

	ids := map[string][]string{}
	for _, section := range sections {
		for _, entry := range section.Entries {
			ids[section.ID] = append(ids[section.ID], entry.ID)
		}
	}

	// Entries requiring {admin, warehouse_manager, team_lead} are rendered.
	require.Contains(t, ids, "inventory")
	assert.Contains(t, ids["inventory"], "inventory.items")
	assert.Contains(t, ids["inventory"], "inventory.distribution")

	// Entries requiring {admin} or {admin, warehouse_manager} are not.
	assert.NotContains(t, ids["inventory"], "inventory.categories")
	assert.NotContains(t, ids["inventory"], "inventory.warehouses")
	assert.NotContains(t, ids, "settings")
	assert.NotContains(t, ids, "sales")
	assert.NotContains(t, ids, "reports")
	assert.NotContains(t, ids, "procurement")

	// Dashboard is visible to everyone.
	assert.Contains(t, ids, "dashboard")
}

func TestVisibleNavApprover(t *testing.T) {
	sections := VisibleNav(RoleApprover)

	var procurement *Section
	for i := range sections {
		if sections[i].ID == "procurement" {
			procurement = &sections[i]
		}
		assert.NotEqual(t, "inventory", sections[i].ID)
		assert.NotEqual(t, "settings", sections[i].ID)
	}

	require.NotNil(t, procurement, "approver should see the procurement section")
	require.Len(t, procurement.Entries, 1)
	assert.Equal(t, "procurement.requests", procurement.Entries[0].ID)
}

func TestVisibleNavAdminSeesEverything(t *testing.T) {
	sections := VisibleNav(RoleAdmin)

	total := 0
	for _, section := range sections {
		total += len(section.Entries)
	}

	want := 0
	for _, section := range Nav() {
		want += len(section.Entries)
	}
	assert.Equal(t, want, total)
}

func TestVisibleNavUnknownRoleSeesNothing(t *testing.T) {
	assert.Empty(t, VisibleNav(RoleUnknown))
	assert.Empty(t, VisibleNav(Role("guest")))
}

func TestSettingsEntriesAdminOnly(t *testing.T) {
	for _, id := range []string{
		"settings.company", "settings.users", "settings.notifications",
		"settings.security", "settings.integrations", "settings.printing",
		"settings.billing",
	} {
		entry, ok := FindEntry(id)
		require.True(t, ok, id)
		assert.Equal(t, []Role{RoleAdmin}, entry.Required, id)
		assert.False(t, CanSee(RoleWarehouseManager, entry.Required), id)
	}
}

func TestFindEntry(t *testing.T) {
	entry, ok := FindEntry("sales.orders")
	require.True(t, ok)
	assert.Equal(t, "/sales/orders", entry.Route)

	_, ok = FindEntry("no.such.entry")
	assert.False(t, ok)
}
