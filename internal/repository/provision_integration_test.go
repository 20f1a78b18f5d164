//go:build integration
// +build integration

package repository

import (
	"sync"
	"testing"

	"field-marketing-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// ProvisionRepositoryTestSuite tests the ProvisionRepository against Postgres
type ProvisionRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ProvisionRepository
	members       *TeamMemberRepository
}

// SetupSuite runs before all tests in the suite
func (suite *ProvisionRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewProvisionRepository(suite.baseTestSuite.DB)
	suite.members = NewTeamMemberRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *ProvisionRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ProvisionRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ProvisionRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestConcurrentProvisioningSeedsOnce races several first loads of the same owner
func (suite *ProvisionRepositoryTestSuite) TestConcurrentProvisioningSeedsOnce() {
	const workers = 8
	results := make(chan bool, workers)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			seeded, err := suite.repo.ProvisionOnce(testutils.TestOwnerID, 1, demoSeed(testutils.TestOwnerID))
			suite.NoError(err)
			results <- seeded
		}()
	}
	wg.Wait()
	close(results)

	seededCount := 0
	for seeded := range results {
		if seeded {
			seededCount++
		}
	}
	suite.Equal(1, seededCount)

	count, err := suite.members.CountByUser(testutils.TestOwnerID)
	suite.NoError(err)
	suite.Equal(int64(1), count)
}

// TestOwnersAreIndependent checks that one owner's claim does not block another
func (suite *ProvisionRepositoryTestSuite) TestOwnersAreIndependent() {
	seeded, err := suite.repo.ProvisionOnce("github:1", 1, demoSeed("github:1"))
	suite.NoError(err)
	suite.True(seeded)

	seeded, err = suite.repo.ProvisionOnce("github:2", 1, demoSeed("github:2"))
	suite.NoError(err)
	suite.True(seeded)
}

// TestListOrderingOnPostgres checks the owner-scoped listing order
func (suite *ProvisionRepositoryTestSuite) TestListOrderingOnPostgres() {
	_, err := suite.repo.ProvisionOnce(testutils.TestOwnerID, 1, demoSeed(testutils.TestOwnerID))
	suite.NoError(err)

	members, err := suite.members.ListByUser(testutils.TestOwnerID, 0)
	suite.NoError(err)
	suite.Len(members, 1)

	other, err := suite.members.ListByUser("github:someone-else", 0)
	suite.NoError(err)
	suite.Empty(other)
}

// TestProvisionRepositoryTestSuite runs the test suite
func TestProvisionRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ProvisionRepositoryTestSuite))
}
