package service

import (
	"crypto/tls"
	"errors"
	"testing"
	"time"

	"field-marketing-backend/internal/config"
	apperrors "field-marketing-backend/internal/errors"

	"github.com/go-ldap/ldap/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLDAPClient implements ldapClient for testing
type fakeLDAPClient struct {
	bindErr           error
	searchErr         error
	searchRes         *ldap.SearchResult
	receivedSearchReq *ldap.SearchRequest

	setTimeoutCalled bool
	timeoutValue     time.Duration

	closed bool
}

func (f *fakeLDAPClient) Bind(username, password string) error {
	return f.bindErr
}

func (f *fakeLDAPClient) Search(searchRequest *ldap.SearchRequest) (*ldap.SearchResult, error) {
	f.receivedSearchReq = searchRequest
	if f.searchErr != nil {
		return f.searchRes, f.searchErr
	}
	if f.searchRes != nil {
		return f.searchRes, nil
	}
	return &ldap.SearchResult{Entries: []*ldap.Entry{}}, nil
}

func (f *fakeLDAPClient) Close() error {
	f.closed = true
	return nil
}

func (f *fakeLDAPClient) SetTimeout(d time.Duration) {
	f.setTimeoutCalled = true
	f.timeoutValue = d
}

func makeConfig() *config.Config {
	return &config.Config{
		LDAPHost:               "ldap.example.com",
		LDAPPort:               "636",
		LDAPBindDN:             "CN=Directory Reader,OU=Users,DC=example,DC=com",
		LDAPBindPW:             "SuperSecret123",
		LDAPBaseDN:             "DC=example,DC=com",
		LDAPInsecureSkipVerify: true,
		LDAPTimeoutSec:         5,
	}
}

func withFakeLDAP(t *testing.T, fc *fakeLDAPClient, dialErr error) {
	orig := dialLDAP
	t.Cleanup(func() { dialLDAP = orig })
	dialLDAP = func(network, addr string, cfg *tls.Config) (ldapClient, error) {
		if dialErr != nil {
			return nil, dialErr
		}
		return fc, nil
	}
}

func personEntry() *ldap.Entry {
	return &ldap.Entry{
		DN: "CN=Sarah Johnson,OU=Users,DC=example,DC=com",
		Attributes: []*ldap.EntryAttribute{
			{Name: "cn", Values: []string{"sjohnson"}},
			{Name: "displayName", Values: []string{"Sarah Johnson"}},
			{Name: "mail", Values: []string{"sarah@company.com"}},
			{Name: "title", Values: []string{"Senior Marketing Rep"}},
			{Name: "mobile", Values: []string{"+1-555-1234"}},
		},
	}
}

func TestDirectory_NotConfigured(t *testing.T) {
	svc := NewDirectoryService(&config.Config{})

	_, err := svc.SearchPeople("sarah")

	assert.ErrorIs(t, err, apperrors.ErrDirectoryNotConfigured)
}

func TestDirectory_QueryTooShort(t *testing.T) {
	withFakeLDAP(t, &fakeLDAPClient{}, nil)
	svc := NewDirectoryService(makeConfig())

	_, err := svc.SearchPeople(" s ")

	assert.True(t, apperrors.IsValidation(err))
}

func TestDirectory_DialError(t *testing.T) {
	withFakeLDAP(t, nil, errors.New("dial failed"))
	svc := NewDirectoryService(makeConfig())

	res, err := svc.SearchPeople("sarah")

	assert.Nil(t, res)
	assert.ErrorIs(t, err, apperrors.ErrDirectoryFailed)
	assert.Contains(t, err.Error(), "dial failed")
}

func TestDirectory_BindError(t *testing.T) {
	fc := &fakeLDAPClient{bindErr: errors.New("bind failed")}
	withFakeLDAP(t, fc, nil)
	cfg := makeConfig()
	svc := NewDirectoryService(cfg)

	res, err := svc.SearchPeople("sarah")

	assert.Nil(t, res)
	assert.ErrorIs(t, err, apperrors.ErrDirectoryFailed)
	assert.True(t, fc.closed, "client should be closed via defer")
	assert.True(t, fc.setTimeoutCalled)
	assert.Equal(t, time.Duration(cfg.LDAPTimeoutSec)*time.Second, fc.timeoutValue)
}

func TestDirectory_SearchError(t *testing.T) {
	fc := &fakeLDAPClient{searchErr: errors.New("search failed")}
	withFakeLDAP(t, fc, nil)
	svc := NewDirectoryService(makeConfig())

	res, err := svc.SearchPeople("sarah")

	assert.Nil(t, res)
	assert.ErrorIs(t, err, apperrors.ErrDirectoryFailed)
	assert.NotNil(t, fc.receivedSearchReq)
}

func TestDirectory_SizeLimitKeepsPartialResults(t *testing.T) {
	fc := &fakeLDAPClient{
		searchErr: ldap.NewError(ldap.LDAPResultSizeLimitExceeded, errors.New("size limit")),
		searchRes: &ldap.SearchResult{Entries: []*ldap.Entry{personEntry()}},
	}
	withFakeLDAP(t, fc, nil)
	svc := NewDirectoryService(makeConfig())

	res, err := svc.SearchPeople("sa")

	require.NoError(t, err)
	assert.Len(t, res, 1)
}

func TestDirectory_Success(t *testing.T) {
	fallback := &ldap.Entry{
		DN:         "CN=mchen,OU=Users,DC=example,DC=com",
		Attributes: []*ldap.EntryAttribute{{Name: "cn", Values: []string{"Mike Chen"}}, {Name: "mail", Values: []string{"mike@company.com"}}},
	}
	fc := &fakeLDAPClient{searchRes: &ldap.SearchResult{Entries: []*ldap.Entry{personEntry(), fallback}}}
	withFakeLDAP(t, fc, nil)
	svc := NewDirectoryService(makeConfig())

	out, err := svc.SearchPeople("s(*)")

	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, DirectoryPerson{
		DN:     "CN=Sarah Johnson,OU=Users,DC=example,DC=com",
		Name:   "Sarah Johnson",
		Email:  "sarah@company.com",
		Role:   "Senior Marketing Rep",
		Mobile: "+1-555-1234",
	}, out[0])
	assert.Equal(t, "Mike Chen", out[1].Name, "cn is used without a display name")

	req := fc.receivedSearchReq
	require.NotNil(t, req)
	assert.Equal(t, "DC=example,DC=com", req.BaseDN)
	assert.Equal(t, maxDirectoryResult, req.SizeLimit)
	escaped := ldap.EscapeFilter("s(*)")
	assert.Equal(t, "(&(objectClass=person)(|(cn="+escaped+"*)(displayName="+escaped+"*)(mail="+escaped+"*)))", req.Filter)
}

func TestDirectory_TimeoutZero_DoesNotSet(t *testing.T) {
	fc := &fakeLDAPClient{}
	withFakeLDAP(t, fc, nil)
	cfg := makeConfig()
	cfg.LDAPTimeoutSec = 0
	svc := NewDirectoryService(cfg)

	_, _ = svc.SearchPeople("alice")

	assert.False(t, fc.setTimeoutCalled, "SetTimeout should not be called when timeout is 0")
}
