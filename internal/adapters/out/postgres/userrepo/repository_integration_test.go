package userrepo_test

import (
	"context"
	"testing"
	"time"

	"commerce/internal/adapters/out/postgres/userrepo"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/user"
	"commerce/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// UserRepositoryIntegrationTestSuite provides integration tests for UserRepository
// using PostgreSQL containers to verify database persistence behavior.
type UserRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *userrepo.GormUserRepository
	tracker    *MockAggregateTracker
}

func (suite *UserRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&userrepo.UserDTO{}))
}

func (suite *UserRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE users").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = userrepo.NewGormUserRepository(suite.db, suite.tracker)
}

func (suite *UserRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UserRepositoryIntegrationTestSuite) TestSave_NewUser_AssignsIDAndPersists() {
	ctx := context.Background()
	testUser := suite.createTestUser("alice@example.com")
	suite.False(testUser.IsPersisted())

	suite.tracker.On("TrackAggregate", mock.Anything, testUser).Once()

	err := suite.repository.Save(ctx, testUser)
	suite.Require().NoError(err)

	suite.True(testUser.IsPersisted())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *UserRepositoryIntegrationTestSuite) TestSave_ExistingUser_UpdatesRow() {
	ctx := context.Background()
	testUser := suite.createTestUser("alice@example.com")
	suite.tracker.On("TrackAggregate", mock.Anything, testUser).Twice()

	suite.Require().NoError(suite.repository.Save(ctx, testUser))

	testUser.Deactivate()
	suite.Require().NoError(suite.repository.Save(ctx, testUser))

	loaded, err := suite.repository.Get(ctx, testUser.ID())
	suite.Require().NoError(err)
	suite.False(loaded.IsActive())
}

func (suite *UserRepositoryIntegrationTestSuite) TestGet_ExistingUser_RoundTripsAggregate() {
	ctx := context.Background()
	testUser := suite.createTestUser("alice@example.com")
	suite.tracker.On("TrackAggregate", mock.Anything, testUser).Once()
	suite.Require().NoError(suite.repository.Save(ctx, testUser))

	loaded, err := suite.repository.Get(ctx, testUser.ID())
	suite.Require().NoError(err)

	suite.True(loaded.ID().IsEqual(testUser.ID()))
	suite.Equal(testUser.Name(), loaded.Name())
	suite.Equal(testUser.Email(), loaded.Email())
	suite.True(loaded.IsActive())
}

func (suite *UserRepositoryIntegrationTestSuite) TestGet_MissingUser_ReturnsNotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UserRepositoryIntegrationTestSuite) TestFindByEmail() {
	ctx := context.Background()
	testUser := suite.createTestUser("alice@example.com")
	suite.tracker.On("TrackAggregate", mock.Anything, testUser).Once()
	suite.Require().NoError(suite.repository.Save(ctx, testUser))

	loaded, err := suite.repository.FindByEmail(ctx, "alice@example.com")
	suite.Require().NoError(err)
	suite.True(loaded.ID().IsEqual(testUser.ID()))

	_, err = suite.repository.FindByEmail(ctx, "nobody@example.com")
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UserRepositoryIntegrationTestSuite) TestExistsByEmail() {
	ctx := context.Background()
	testUser := suite.createTestUser("alice@example.com")
	suite.tracker.On("TrackAggregate", mock.Anything, testUser).Once()
	suite.Require().NoError(suite.repository.Save(ctx, testUser))

	exists, err := suite.repository.ExistsByEmail(ctx, "alice@example.com")
	suite.Require().NoError(err)
	suite.True(exists)

	exists, err = suite.repository.ExistsByEmail(ctx, "nobody@example.com")
	suite.Require().NoError(err)
	suite.False(exists)
}

func (suite *UserRepositoryIntegrationTestSuite) TestFindActive_ExcludesDeactivatedUsers() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	active := suite.createTestUser("alice@example.com")
	suite.Require().NoError(suite.repository.Save(ctx, active))

	deactivated := suite.createTestUser("bob@example.com")
	deactivated.Deactivate()
	suite.Require().NoError(suite.repository.Save(ctx, deactivated))

	found, err := suite.repository.FindActive(ctx)
	suite.Require().NoError(err)
	suite.Len(found, 1)
	suite.True(found[0].ID().IsEqual(active.ID()))
}

func (suite *UserRepositoryIntegrationTestSuite) TestCount_ReturnsNumberOfUsers() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	suite.Require().NoError(suite.repository.Save(ctx, suite.createTestUser("alice@example.com")))
	suite.Require().NoError(suite.repository.Save(ctx, suite.createTestUser("bob@example.com")))

	count, err := suite.repository.Count(ctx)
	suite.Require().NoError(err)
	suite.Equal(int64(2), count)
}

func (suite *UserRepositoryIntegrationTestSuite) createTestUser(email string) *user.User {
	u, err := user.NewUser("Test User", email, "s3cret1")
	suite.Require().NoError(err)
	return u
}

func TestUserRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryIntegrationTestSuite))
}
