package catalog

import "github.com/l3montree-dev/devaudit/internal/database/models"

// Vulnerability names must match Control.MappedVulnName exactly. The
// checklist derivation joins on the name, not the id.

var seedVulnerabilities = []models.Vulnerability{
	{Name: "SQL Injection", Category: "OWASP", DefaultLikelihood: 4, DefaultImpact: 5},
	{Name: "Cross-Site Scripting (XSS)", Category: "OWASP", DefaultLikelihood: 4, DefaultImpact: 4},
	{Name: "Cross-Site Request Forgery (CSRF)", Category: "OWASP", DefaultLikelihood: 3, DefaultImpact: 4},
	{Name: "Weak Password Policy", Category: "Authentication", DefaultLikelihood: 4, DefaultImpact: 4},
	{Name: "No HTTPS/TLS", Category: "Transport Security", DefaultLikelihood: 3, DefaultImpact: 5},
	{Name: "No Audit Logs", Category: "Logging", DefaultLikelihood: 3, DefaultImpact: 4},
	{Name: "Outdated Server Software", Category: "Patch Management", DefaultLikelihood: 4, DefaultImpact: 4},
	{Name: "Open Unnecessary Ports", Category: "Network Security", DefaultLikelihood: 3, DefaultImpact: 4},
	{Name: "Exposed Admin Panel", Category: "Access Control", DefaultLikelihood: 4, DefaultImpact: 4},
	{Name: "Insecure File Upload", Category: "OWASP", DefaultLikelihood: 3, DefaultImpact: 4},
}

var seedControls = []models.Control{
	{Framework: "ISO/IEC 27001", Name: "Password policy enforced (min length, complexity, lockout)", MappedVulnName: "Weak Password Policy"},
	{Framework: "ISO/IEC 27001", Name: "MFA enabled for privileged/admin accounts", MappedVulnName: "Weak Password Policy"},

	{Framework: "ISO/IEC 27001", Name: "TLS certificate configured and HTTPS enforced", MappedVulnName: "No HTTPS/TLS"},
	{Framework: "ISO/IEC 27001", Name: "Secure transport configuration reviewed (TLS versions/ciphers)", MappedVulnName: "No HTTPS/TLS"},

	{Framework: "ISO/IEC 27001", Name: "Audit logging enabled for key events (auth, admin actions, data access)", MappedVulnName: "No Audit Logs"},
	{Framework: "ISO/IEC 27001", Name: "Log retention & monitoring procedure implemented", MappedVulnName: "No Audit Logs"},

	{Framework: "ISO/IEC 27001", Name: "Patch management process defined and followed", MappedVulnName: "Outdated Server Software"},
	{Framework: "ISO/IEC 27001", Name: "Asset/software inventory maintained for updates", MappedVulnName: "Outdated Server Software"},

	{Framework: "ISO/IEC 27001", Name: "Firewall rules reviewed; only required ports exposed", MappedVulnName: "Open Unnecessary Ports"},
	{Framework: "ISO/IEC 27001", Name: "Network segmentation and access restrictions applied", MappedVulnName: "Open Unnecessary Ports"},

	{Framework: "ISO/IEC 27001", Name: "Admin interface access restricted (IP allowlist/VPN)", MappedVulnName: "Exposed Admin Panel"},
	{Framework: "ISO/IEC 27001", Name: "Privileged access rights reviewed and minimized", MappedVulnName: "Exposed Admin Panel"},

	{Framework: "ISO/IEC 27001", Name: "Input validation and parameterized queries implemented", MappedVulnName: "SQL Injection"},
	{Framework: "ISO/IEC 27001", Name: "Secure coding review and testing performed (SQLi)", MappedVulnName: "SQL Injection"},

	{Framework: "ISO/IEC 27001", Name: "Output encoding & sanitization implemented (XSS)", MappedVulnName: "Cross-Site Scripting (XSS)"},
	{Framework: "ISO/IEC 27001", Name: "Content Security Policy (CSP) configured", MappedVulnName: "Cross-Site Scripting (XSS)"},

	{Framework: "ISO/IEC 27001", Name: "CSRF tokens implemented for state-changing actions", MappedVulnName: "Cross-Site Request Forgery (CSRF)"},
	{Framework: "ISO/IEC 27001", Name: "SameSite cookies & origin checks configured", MappedVulnName: "Cross-Site Request Forgery (CSRF)"},

	{Framework: "ISO/IEC 27001", Name: "File upload validation (type/size) and malware scan", MappedVulnName: "Insecure File Upload"},
	{Framework: "ISO/IEC 27001", Name: "Upload storage isolation and access control enforced", MappedVulnName: "Insecure File Upload"},
}
