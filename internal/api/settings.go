package api

import "context"

// CompanySettings is the company profile
type CompanySettings struct {
	CompanyName     string `json:"company_name"`
	Address         string `json:"address,omitempty"`
	Phone           string `json:"phone,omitempty"`
	Email           string `json:"email,omitempty"`
	Website         string `json:"website,omitempty"`
	TaxID           string `json:"tax_id,omitempty"`
	Currency        string `json:"currency,omitempty"`
	Timezone        string `json:"timezone,omitempty"`
	DateFormat      string `json:"date_format,omitempty"`
	FiscalYearStart string `json:"fiscal_year_start,omitempty"`
}

// NotificationSettings controls alerting behavior
type NotificationSettings struct {
	LowStockAlerts     bool   `json:"low_stock_alerts"`
	OrderNotifications bool   `json:"order_notifications"`
	PaymentAlerts      bool   `json:"payment_alerts"`
	SystemUpdates      bool   `json:"system_updates"`
	EmailNotifications bool   `json:"email_notifications"`
	StockThreshold     int    `json:"stock_threshold,omitempty"`
	EmailFrequency     string `json:"email_frequency,omitempty"`
}

// PasswordPolicy is the password requirements block of SecuritySettings
type PasswordPolicy struct {
	MinLength           int  `json:"min_length"`
	RequireUppercase    bool `json:"require_uppercase"`
	RequireNumbers      bool `json:"require_numbers"`
	RequireSpecialChars bool `json:"require_special_chars"`
	ExpiryDays          int  `json:"expiry_days"`
}

// SecuritySettings controls authentication policy
type SecuritySettings struct {
	PasswordPolicy PasswordPolicy `json:"password_policy"`
	TwoFactorAuth  bool           `json:"two_factor_auth"`
	SessionTimeout int            `json:"session_timeout"`
	IPWhitelist    []string       `json:"ip_whitelist,omitempty"`
}

// PrintingSettings controls document output
type PrintingSettings struct {
	InvoiceTemplate string `json:"invoice_template,omitempty"`
	ReceiptTemplate string `json:"receipt_template,omitempty"`
	BarcodeFormat   string `json:"barcode_format,omitempty"`
	PrinterName     string `json:"printer_name,omitempty"`
	PageSize        string `json:"page_size,omitempty"`
	Orientation     string `json:"orientation,omitempty"`
}

// IntegrationSettings toggles external integrations
type IntegrationSettings struct {
	PaymentGateways map[string]bool `json:"payment_gateways,omitempty"`
	Shipping        map[string]bool `json:"shipping,omitempty"`
	Accounting      map[string]bool `json:"accounting,omitempty"`
}

// GetCompanySettings fetches the company profile
func (c *Client) GetCompanySettings(ctx context.Context) (*CompanySettings, error) {
	var settings CompanySettings
	if err := c.get(ctx, "/settings/company/", nil, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// UpdateCompanySettings replaces the company profile
func (c *Client) UpdateCompanySettings(ctx context.Context, settings CompanySettings) (*CompanySettings, error) {
	var updated CompanySettings
	if err := c.put(ctx, "/settings/company/", settings, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// GetNotificationSettings fetches notification settings
func (c *Client) GetNotificationSettings(ctx context.Context) (*NotificationSettings, error) {
	var settings NotificationSettings
	if err := c.get(ctx, "/settings/notifications/", nil, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// UpdateNotificationSettings replaces notification settings
func (c *Client) UpdateNotificationSettings(ctx context.Context, settings NotificationSettings) (*NotificationSettings, error) {
	var updated NotificationSettings
	if err := c.put(ctx, "/settings/notifications/", settings, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// GetSecuritySettings fetches security settings
func (c *Client) GetSecuritySettings(ctx context.Context) (*SecuritySettings, error) {
	var settings SecuritySettings
	if err := c.get(ctx, "/settings/security/", nil, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// UpdateSecuritySettings replaces security settings
func (c *Client) UpdateSecuritySettings(ctx context.Context, settings SecuritySettings) (*SecuritySettings, error) {
	var updated SecuritySettings
	if err := c.put(ctx, "/settings/security/", settings, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// GetPrintingSettings fetches printing settings
func (c *Client) GetPrintingSettings(ctx context.Context) (*PrintingSettings, error) {
	var settings PrintingSettings
	if err := c.get(ctx, "/settings/printing/", nil, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// GetIntegrationSettings fetches integration settings
func (c *Client) GetIntegrationSettings(ctx context.Context) (*IntegrationSettings, error) {
	var settings IntegrationSettings
	if err := c.get(ctx, "/settings/integrations/", nil, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}
