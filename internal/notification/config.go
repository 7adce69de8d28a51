package notification

// SMTPConfig holds connection parameters for the SMTP provider.
type SMTPConfig struct {
	Host       string `json:"host"`
	Port       int    `json:"port"`
	Username   string `json:"username"`
	Password   string `json:"-"`
	FromAddr   string `json:"from_address"`
	FromName   string `json:"from_name"`
	AdminAddr  string `json:"admin_address"`
	Encryption string `json:"encryption"` // "none", "starttls", "ssl_tls"
}

// Configured reports whether the mailbox secret needed to send is present.
func (c SMTPConfig) Configured() bool {
	return c.Password != ""
}

// WhatsAppConfig holds the Twilio credentials used for WhatsApp delivery.
type WhatsAppConfig struct {
	AccountSID string `json:"account_sid"`
	AuthToken  string `json:"-"`
	// FromNumber is the sender in Twilio's channel format, e.g. "whatsapp:+14155238886".
	FromNumber string `json:"from_number"`
}

// Missing returns the environment variable names of the credentials that are
// not set, in a stable order. An empty result means the config is usable.
func (c WhatsAppConfig) Missing() []string {
	var missing []string
	if c.AccountSID == "" {
		missing = append(missing, "TWILIO_ACCOUNT_SID")
	}
	if c.AuthToken == "" {
		missing = append(missing, "TWILIO_AUTH_TOKEN")
	}
	if c.FromNumber == "" {
		missing = append(missing, "TWILIO_WHATSAPP_NUMBER")
	}
	return missing
}

// BusinessProfile carries the branding and contact details printed on every
// receipt and bill.
type BusinessProfile struct {
	Name     string `yaml:"name" json:"name"`
	Tagline  string `yaml:"tagline" json:"tagline"`
	Address  string `yaml:"address" json:"address"`
	Phone    string `yaml:"phone" json:"phone"`
	Email    string `yaml:"email" json:"email"`
	Website  string `yaml:"website" json:"website"`
	Hours    string `yaml:"hours" json:"hours"`
	Currency string `yaml:"currency" json:"currency"`
}

// DefaultProfile is used when no profile file is configured.
func DefaultProfile() BusinessProfile {
	return BusinessProfile{
		Name:     "Luxe Salon & Spa",
		Tagline:  "Beauty · Wellness · Care",
		Address:  "12 MG Road, Bengaluru 560001",
		Phone:    "+91 98765 43210",
		Email:    "hello@luxesalon.in",
		Website:  "www.luxesalon.in",
		Hours:    "Mon-Sun 10:00 AM - 8:00 PM",
		Currency: "₹",
	}
}

// WithDefaults fills every empty field of p from DefaultProfile.
func (p BusinessProfile) WithDefaults() BusinessProfile {
	d := DefaultProfile()
	fill := func(dst *string, v string) {
		if *dst == "" {
			*dst = v
		}
	}
	fill(&p.Name, d.Name)
	fill(&p.Tagline, d.Tagline)
	fill(&p.Address, d.Address)
	fill(&p.Phone, d.Phone)
	fill(&p.Email, d.Email)
	fill(&p.Website, d.Website)
	fill(&p.Hours, d.Hours)
	fill(&p.Currency, d.Currency)
	return p
}
