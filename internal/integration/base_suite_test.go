package integration_test

import (
	"context"
	"log"
	"time"

	"github.com/campventure/summer-camp-server/internal/repository"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	dbName      = "summer_camp"
	dbImageName = "mongo:7"
)

type BaseSuite struct {
	suite.Suite
	dbContainer *MongoContainer
	client      *mongo.Client
	db          *mongo.Database

	userRepo       *repository.MongoUserRepository
	classRepo      *repository.MongoClassRepository
	instructorRepo *repository.MongoInstructorRepository
	cartRepo       *repository.MongoCartRepository
	paymentRepo    *repository.MongoPaymentRepository
}

func (s *BaseSuite) SetupSuite() {
	ctx := context.Background()

	mongoContainer, err := getDbContainer(ctx)
	if err != nil {
		log.Printf("failed to start container: %s", err)
		return
	}

	s.dbContainer = mongoContainer

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoContainer.ConnectionString))
	if err != nil {
		log.Printf("cannot connect to database: %s", err)
		return
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx, nil); err != nil {
		log.Printf("cannot ping database: %s", err)
		return
	}

	s.client = client
	s.db = client.Database(dbName)

	s.userRepo = repository.NewMongoUserRepository(s.db)
	s.classRepo = repository.NewMongoClassRepository(s.db)
	s.instructorRepo = repository.NewMongoInstructorRepository(s.db)
	s.cartRepo = repository.NewMongoCartRepository(s.db)
	s.paymentRepo = repository.NewMongoPaymentRepository(s.db)
}

// SetupTest drops the whole test database so every test starts from an
// empty store.
func (s *BaseSuite) SetupTest() {
	err := s.db.Drop(context.Background())
	s.Require().NoError(err)
}

func (s *BaseSuite) TearDownSuite() {
	if s.client != nil {
		if err := s.client.Disconnect(context.Background()); err != nil {
			log.Printf("failed to disconnect client: %s", err)
		}
	}
	if s.dbContainer != nil {
		if err := testcontainers.TerminateContainer(s.dbContainer.Container); err != nil {
			log.Printf("failed to terminate container: %s", err)
		}
	}
}
