package api

import "context"

// DashboardStats is the admin dashboard summary
type DashboardStats struct {
	TotalUsers   int `json:"total_users"`
	ActiveUsers  int `json:"active_users"`
	StaffUsers   int `json:"staff_users"`
	MonthlyStats []struct {
		Month string `json:"month"`
		Count int    `json:"count"`
	} `json:"monthly_stats"`
	RoleDistribution []struct {
		Role  string `json:"role"`
		Count int    `json:"count"`
	} `json:"role_distribution"`
}

// ListUsers fetches all user accounts
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.get(ctx, "/users/users/", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser fetches a single user account
func (c *Client) GetUser(ctx context.Context, id string) (*User, error) {
	var user User
	if err := c.get(ctx, "/users/users/"+id+"/", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser creates a user account
func (c *Client) CreateUser(ctx context.Context, user User) (*User, error) {
	var created User
	if err := c.post(ctx, "/users/users/", user, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateUser replaces a user account
func (c *Client) UpdateUser(ctx context.Context, id string, user User) (*User, error) {
	var updated User
	if err := c.put(ctx, "/users/users/"+id+"/", user, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteUser removes a user account
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.delete(ctx, "/users/users/"+id+"/")
}

// GetDashboardStats fetches the admin dashboard summary
func (c *Client) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	var stats DashboardStats
	if err := c.get(ctx, "/users/dashboard/stats/", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
