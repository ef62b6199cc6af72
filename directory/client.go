// Package directory authenticates users against the corporate Active
// Directory over LDAP and resolves their profile attributes.
package directory

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-ldap/ldap/v3"
	"github.com/nwfth/forms-go/config"
)

var (
	ErrUnreachable        = errors.New("directory service unreachable")
	ErrInvalidCredentials = errors.New("invalid directory credentials")
	ErrProfileNotFound    = errors.New("directory profile not found")
)

// Profile mirrors the directory attributes provisioned into a local account.
type Profile struct {
	Email       string
	DisplayName string
	Department  string
}

type Client interface {
	Authenticate(principal, password string) (*Profile, error)
}

type LDAPClient struct {
	url          string
	baseDN       string
	bindDN       string
	bindPassword string
}

func NewLDAPClient() *LDAPClient {
	return &LDAPClient{
		url:          config.LdapURL,
		baseDN:       config.LdapBaseDN,
		bindDN:       config.LdapBindDN,
		bindPassword: config.LdapBindPassword,
	}
}

// Authenticate binds as the service account, locates the principal's entry,
// then re-binds as the user to verify the password. Connections are scoped
// to the call.
func (c *LDAPClient) Authenticate(principal, password string) (*Profile, error) {
	if password == "" {
		// An empty password would turn the user bind into an anonymous
		// bind, which some servers accept.
		return nil, ErrInvalidCredentials
	}

	conn, err := ldap.DialURL(c.url)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer conn.Close()

	if c.bindDN != "" {
		if err := conn.Bind(c.bindDN, c.bindPassword); err != nil {
			return nil, fmt.Errorf("%w: service bind: %v", ErrUnreachable, err)
		}
	}

	req := ldap.NewSearchRequest(
		c.baseDN,
		ldap.ScopeWholeSubtree, ldap.NeverDerefAliases, 1, 0, false,
		fmt.Sprintf("(|(userPrincipalName=%s)(mail=%s))", ldap.EscapeFilter(principal), ldap.EscapeFilter(principal)),
		[]string{"dn", "mail", "displayName", "department", "sAMAccountName"},
		nil,
	)

	res, err := conn.Search(req)
	if err != nil {
		return nil, fmt.Errorf("%w: search: %v", ErrUnreachable, err)
	}
	if len(res.Entries) == 0 {
		return nil, ErrProfileNotFound
	}

	entry := res.Entries[0]
	if err := conn.Bind(entry.DN, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	email := entry.GetAttributeValue("mail")
	if email == "" {
		email = principal
	}
	name := entry.GetAttributeValue("displayName")
	if name == "" {
		name = entry.GetAttributeValue("sAMAccountName")
	}

	return &Profile{
		Email:       email,
		DisplayName: name,
		Department:  entry.GetAttributeValue("department"),
	}, nil
}

// NormalizeUPN turns whatever the login form sent -- bare username, email on
// the corporate domain, or email on some other domain -- into the principal
// name the directory expects. A bare username and its domain-qualified form
// normalize to the same principal.
func NormalizeUPN(identifier, domainSuffix string) string {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || domainSuffix == "" {
		return identifier
	}

	if at := strings.IndexByte(identifier, '@'); at >= 0 {
		if strings.EqualFold(identifier[at+1:], domainSuffix) {
			return identifier
		}
		return identifier[:at] + "@" + domainSuffix
	}
	return identifier + "@" + domainSuffix
}
