package service

import (
	"crypto/tls"
	"fmt"
	"strings"
	"time"

	"field-marketing-backend/internal/config"
	apperrors "field-marketing-backend/internal/errors"

	"github.com/go-ldap/ldap/v3"
)

const (
	minDirectoryQuery  = 2
	maxDirectoryResult = 25
)

// DirectoryPerson is a directory entry used to prefill the add-member form
type DirectoryPerson struct {
	DN     string `json:"dn"`
	Name   string `json:"name" example:"Sarah Johnson"`
	Email  string `json:"email" example:"sarah@company.com"`
	Role   string `json:"role,omitempty" example:"Senior Marketing Rep"`
	Mobile string `json:"mobile,omitempty"`
}

// ldapClient is the subset of *ldap.Conn the directory needs
type ldapClient interface {
	Bind(username, password string) error
	Search(searchRequest *ldap.SearchRequest) (*ldap.SearchResult, error)
	Close() error
	SetTimeout(d time.Duration)
}

var dialLDAP = func(network, addr string, cfg *tls.Config) (ldapClient, error) {
	conn, err := ldap.DialURL("ldaps://"+addr, ldap.DialWithTLSConfig(cfg))
	if err != nil {
		return nil, err
	}
	return conn, nil
}

// DirectoryService searches the company LDAP directory
type DirectoryService struct {
	cfg *config.Config
}

// NewDirectoryService creates a new directory service
func NewDirectoryService(cfg *config.Config) *DirectoryService {
	return &DirectoryService{cfg: cfg}
}

// SearchPeople finds people whose name or mail starts with query
func (s *DirectoryService) SearchPeople(query string) ([]DirectoryPerson, error) {
	if !s.cfg.DirectoryEnabled() {
		return nil, apperrors.ErrDirectoryNotConfigured
	}
	query = strings.TrimSpace(query)
	if len([]rune(query)) < minDirectoryQuery {
		return nil, apperrors.NewValidationError("q", fmt.Sprintf("must be at least %d characters", minDirectoryQuery))
	}

	addr := s.cfg.LDAPHost + ":" + s.cfg.LDAPPort
	l, err := dialLDAP("tcp", addr, &tls.Config{InsecureSkipVerify: s.cfg.LDAPInsecureSkipVerify}) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrDirectoryFailed, err)
	}
	defer l.Close()

	if s.cfg.LDAPTimeoutSec > 0 {
		l.SetTimeout(time.Duration(s.cfg.LDAPTimeoutSec) * time.Second)
	}

	if err := l.Bind(s.cfg.LDAPBindDN, s.cfg.LDAPBindPW); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrDirectoryFailed, err)
	}

	escaped := ldap.EscapeFilter(query)
	filter := "(&(objectClass=person)(|(cn=" + escaped + "*)(displayName=" + escaped + "*)(mail=" + escaped + "*)))"
	req := ldap.NewSearchRequest(
		s.cfg.LDAPBaseDN,
		ldap.ScopeWholeSubtree,
		ldap.NeverDerefAliases,
		maxDirectoryResult,
		s.cfg.LDAPTimeoutSec,
		false,
		filter,
		[]string{"cn", "displayName", "mail", "title", "mobile"},
		nil,
	)

	res, err := l.Search(req)
	if err != nil && !ldap.IsErrorWithCode(err, ldap.LDAPResultSizeLimitExceeded) {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrDirectoryFailed, err)
	}
	if res == nil {
		return []DirectoryPerson{}, nil
	}

	out := make([]DirectoryPerson, 0, len(res.Entries))
	for _, e := range res.Entries {
		name := e.GetAttributeValue("displayName")
		if name == "" {
			name = e.GetAttributeValue("cn")
		}
		out = append(out, DirectoryPerson{
			DN:     e.DN,
			Name:   name,
			Email:  e.GetAttributeValue("mail"),
			Role:   e.GetAttributeValue("title"),
			Mobile: e.GetAttributeValue("mobile"),
		})
	}
	return out, nil
}
