package model

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// Category is an AbuseIPDB abuse category.
// The service identifies categories by a small integer; Name and
// Description come from the public catalog at
// https://www.abuseipdb.com/categories.
type Category struct {
	// ID is the numeric code sent in the categories form field.
	ID int `json:"id"`

	// Name is the short display name, e.g. "Brute-Force".
	Name string `json:"name"`

	// Description explains when the category applies.
	Description string `json:"description"`
}

// String returns the numeric code, which is how the service expects it.
func (c Category) String() string {
	return strconv.Itoa(c.ID)
}

// Category codes defined by AbuseIPDB.
const (
	CategoryDNSCompromise = 1
	CategoryDNSPoisoning  = 2
	CategoryFraudOrders   = 3
	CategoryDDoSAttack    = 4
	CategoryFTPBruteForce = 5
	CategoryPingOfDeath   = 6
	CategoryPhishing      = 7
	CategoryFraudVoIP     = 8
	CategoryOpenProxy     = 9
	CategoryWebSpam       = 10
	CategoryEmailSpam     = 11
	CategoryBlogSpam      = 12
	CategoryVPNIP         = 13
	CategoryPortScan      = 14
	CategoryHacking       = 15
	CategorySQLInjection  = 16
	CategorySpoofing      = 17
	CategoryBruteForce    = 18
	CategoryBadWebBot     = 19
	CategoryExploitedHost = 20
	CategoryWebAppAttack  = 21
	CategorySSH           = 22
	CategoryIoTTargeted   = 23
)

// categories is the catalog ordered by ID.
var categories = []Category{
	{CategoryDNSCompromise, "DNS Compromise", "Altering DNS records resulting in improper redirection."},
	{CategoryDNSPoisoning, "DNS Poisoning", "Falsifying domain server cache (cache poisoning)."},
	{CategoryFraudOrders, "Fraud Orders", "Fraudulent orders."},
	{CategoryDDoSAttack, "DDoS Attack", "Participating in distributed denial-of-service (usually part of botnet)."},
	{CategoryFTPBruteForce, "FTP Brute-Force", "Brute-force attacks against FTP services."},
	{CategoryPingOfDeath, "Ping of Death", "Oversized IP packet."},
	{CategoryPhishing, "Phishing", "Phishing websites and/or email."},
	{CategoryFraudVoIP, "Fraud VoIP", "Fraudulent VoIP activity."},
	{CategoryOpenProxy, "Open Proxy", "Open proxy, open relay, or Tor exit node."},
	{CategoryWebSpam, "Web Spam", "Comment/forum spam, HTTP referer spam, or other CMS spam."},
	{CategoryEmailSpam, "Email Spam", "Spam email content, infected attachments, and phishing emails."},
	{CategoryBlogSpam, "Blog Spam", "CMS blog comment spam."},
	{CategoryVPNIP, "VPN IP", "Conjunctive category."},
	{CategoryPortScan, "Port Scan", "Scanning for open ports and vulnerable services."},
	{CategoryHacking, "Hacking", "Generic hacking attempts."},
	{CategorySQLInjection, "SQL Injection", "Attempts at SQL injection."},
	{CategorySpoofing, "Spoofing", "Email sender spoofing."},
	{CategoryBruteForce, "Brute-Force", "Credential brute-force attacks on webpage logins and services like SSH, FTP, SIP, SMTP, RDP, etc."},
	{CategoryBadWebBot, "Bad Web Bot", "Webpage scraping and crawlers that do not honor robots.txt."},
	{CategoryExploitedHost, "Exploited Host", "Host is likely infected with malware and being used for other attacks or to host malicious content."},
	{CategoryWebAppAttack, "Web App Attack", "Attempts to probe for or exploit installed web applications such as a CMS."},
	{CategorySSH, "SSH", "Secure Shell (SSH) abuse. Use in combination with more specific categories."},
	{CategoryIoTTargeted, "IoT Targeted", "Abuse was targeted at an \"Internet of Things\" type device."},
}

// Categories returns a copy of the full catalog ordered by ID.
func Categories() []Category {
	result := make([]Category, len(categories))
	copy(result, categories)
	return result
}

// LookupCategory returns the category with the given ID.
func LookupCategory(id int) (Category, bool) {
	if id < 1 || id > len(categories) {
		return Category{}, false
	}
	return categories[id-1], true
}

// FilterCategories returns the catalog entries matching any of the filters.
// A filter matches when it equals the category ID or when it is a
// case-insensitive substring of the category name. No filters, or only
// blank ones, returns the whole catalog.
func FilterCategories(filters ...string) []Category {
	if len(filters) == 0 {
		return Categories()
	}

	fold := cases.Fold()
	foldedFilters := make([]string, 0, len(filters))
	for _, f := range filters {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		foldedFilters = append(foldedFilters, fold.String(f))
	}
	if len(foldedFilters) == 0 {
		return Categories()
	}

	var result []Category
	for _, c := range categories {
		id := strconv.Itoa(c.ID)
		name := fold.String(c.Name)
		for _, f := range foldedFilters {
			if f == id || strings.Contains(name, f) {
				result = append(result, c)
				break
			}
		}
	}
	return result
}
