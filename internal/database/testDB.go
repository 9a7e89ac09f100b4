package database

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	m "JoinUsMaybe-backend/internal/model"
	"JoinUsMaybe-backend/internal/utilities"
)

var testDBInstance *DBinstanceStruct
var teardown func(context.Context, ...testcontainers.TerminateOption) error

// Exported seeded users shared across package tests
var (
	TestAdminUser  m.User
	TestApplicant1 m.User
	TestApplicant2 m.User
	TestRecruiter1 m.User
	TestRecruiter2 m.User

	// Shared plain password of every seeded user
	TestSeedPassword = "SeedPass123!"
)

// GetTestDB starts a PostgreSQL test container and returns a teardown function,
// the DB instance, and any error encountered during setup.
func GetTestDB() (func(context.Context, ...testcontainers.TerminateOption) error, *DBinstanceStruct, error) {

	if testDBInstance != nil && teardown != nil {
		return teardown, testDBInstance, nil
	}

	// Database configuration
	var (
		dbName = "database"
		dbPwd  = "password"
		dbUser = "user"
	)

	dbContainer, err := postgres.Run(
		context.Background(),
		"postgres:latest",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPwd),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	if err != nil {
		return nil, nil, err
	}

	dbHost, err := dbContainer.Host(context.Background())
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	dbPort, err := dbContainer.MappedPort(context.Background(), nat.Port("5432/tcp"))
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	config := &DBConfig{
		useConstr: true,
		Constr:    fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", dbHost, dbPort.Port(), dbUser, dbPwd, dbName),
	}

	db, err := NewDBInstance(config)
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	if err := seedTestData(db); err != nil {
		_ = dbContainer.Terminate(context.Background())
		return nil, nil, err
	}

	testDBInstance = db
	teardown = dbContainer.Terminate

	return dbContainer.Terminate, db, nil
}

// seedTestData inserts sample applicant, recruiter and admin accounts if empty.
func seedTestData(db *DBinstanceStruct) error {
	var userCount int64
	if err := db.Model(&m.User{}).Count(&userCount).Error; err != nil {
		return err
	}

	if userCount > 0 {
		return loadTestData(db)
	}

	tels := []*string{ptr("0100000001"), ptr("0100000002"), ptr("0200000001"), ptr("0200000002"), ptr("0300000001")}
	emails := []*string{
		ptr("applicant1@example.com"), ptr("applicant2@example.com"),
		ptr("recruiter1@example.com"), ptr("recruiter2@example.com"),
		ptr("admin@example.com"),
	}
	userSpecs := []struct {
		username string
		email    *string
		tel      *string
		role     string
	}{
		{"applicant_user_1", emails[0], tels[0], m.RoleApplicant},
		{"applicant_user_2", emails[1], tels[1], m.RoleApplicant},
		{"recruiter_user_1", emails[2], tels[2], m.RoleRecruiter},
		{"recruiter_user_2", emails[3], tels[3], m.RoleRecruiter},
		{"admin_user", emails[4], tels[4], m.RoleAdmin},
	}

	// Pre-hash shared password for all seeded users
	hashedPwd, errHash := utilities.HashPassword(TestSeedPassword)
	if errHash != nil {
		return errHash
	}

	users := make([]m.User, 0, len(userSpecs))
	for _, s := range userSpecs {
		users = append(users, m.User{
			ID:       uuid.New(),
			Username: s.username,
			Email:    s.email,
			Tel:      s.tel,
			Role:     s.role,
			Password: hashedPwd,
		})
	}

	if err := db.Create(&users).Error; err != nil {
		return err
	}

	for _, u := range users {
		assignSeedUser(u)
	}

	return nil
}

// loadTestData populates exported variables when records already exist.
func loadTestData(db *DBinstanceStruct) error {
	var users []m.User
	if err := db.Where("username IN ?", []string{
		"applicant_user_1", "applicant_user_2", "recruiter_user_1", "recruiter_user_2", "admin_user",
	}).Find(&users).Error; err != nil {
		return err
	}
	for _, u := range users {
		assignSeedUser(u)
	}
	return nil
}

func assignSeedUser(u m.User) {
	switch u.Username {
	case "applicant_user_1":
		TestApplicant1 = u
	case "applicant_user_2":
		TestApplicant2 = u
	case "recruiter_user_1":
		TestRecruiter1 = u
	case "recruiter_user_2":
		TestRecruiter2 = u
	case "admin_user":
		TestAdminUser = u
	}
}

// ptr helper
func ptr[T any](v T) *T { return &v }
