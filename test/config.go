package test

import (
	"database/sql"
	"os"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/ory/dockertest/v3"
)

// Postgres test database configuration
const (
	PostgresUser     = "cineiut"
	PostgresPassword = "cineiut_pwd"
	PostgresDB       = "cineiut_test"
	PostgresHost     = "localhost"
)

// RabbitMQ test broker configuration
const (
	RabbitMQUser     = "guest"
	RabbitMQPassword = "guest"
	RabbitMQHost     = "localhost"
)

// PostgresDSN returns the data source name for Postgres connection with dynamic port
func PostgresDSN(port string) string {
	return "postgres://" + PostgresUser + ":" + PostgresPassword + "@" + PostgresHost + ":" + port + "/" + PostgresDB + "?sslmode=disable"
}

// PostgresDockerEnv returns the environment variables for Postgres Docker container
func PostgresDockerEnv() []string {
	return []string{
		"POSTGRES_USER=" + PostgresUser,
		"POSTGRES_PASSWORD=" + PostgresPassword,
		"POSTGRES_DB=" + PostgresDB,
	}
}

// RabbitMQURL returns the AMQP URL for the broker with dynamic port
func RabbitMQURL(port string) string {
	return "amqp://" + RabbitMQUser + ":" + RabbitMQPassword + "@" + RabbitMQHost + ":" + port + "/"
}

// NewDockerPool connects to the local Docker daemon and skips the test when
// there is none.
func NewDockerPool(t *testing.T) *dockertest.Pool {
	pool, err := dockertest.NewPool("")
	if err == nil {
		err = pool.Client.Ping()
	}
	if err != nil {
		t.Skipf("Could not connect to docker: %s", err)
	}
	return pool
}

// SetupPostgresDB starts a Postgres container and returns an open connection
// together with the mapped port.
func SetupPostgresDB(t *testing.T, pool *dockertest.Pool) (*sql.DB, string, *dockertest.Resource) {
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env:        PostgresDockerEnv(),
	})
	if err != nil {
		t.Fatalf("Could not run postgres from docker: %s", err)
	}

	// Get the dynamically assigned port
	port := resource.GetPort("5432/tcp")

	var db *sql.DB
	// Retry connection until Docker container is ready
	if err = pool.Retry(func() error {
		var err error
		db, err = sql.Open("pgx", PostgresDSN(port))
		if err != nil {
			return err
		}
		return db.Ping()
	}); err != nil {
		_ = pool.Purge(resource)
		t.Fatalf("Could not connect to postgres: %s", err)
	}

	return db, port, resource
}

// SetupRabbitMQ starts a RabbitMQ container and returns its AMQP URL once the
// broker accepts connections. ping dials the broker.
func SetupRabbitMQ(t *testing.T, pool *dockertest.Pool, ping func(url string) error) (string, *dockertest.Resource) {
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "rabbitmq",
		Tag:        "3.13-alpine",
	})
	if err != nil {
		t.Fatalf("Could not run rabbitmq from docker: %s", err)
	}

	url := RabbitMQURL(resource.GetPort("5672/tcp"))
	if err = pool.Retry(func() error {
		return ping(url)
	}); err != nil {
		_ = pool.Purge(resource)
		t.Fatalf("Could not connect to rabbitmq: %s", err)
	}

	return url, resource
}

func ExecFile(t *testing.T, db *sql.DB, file string) {
	if t.Failed() {
		return
	}
	fileContent, err := os.ReadFile(file)
	if err != nil {
		t.Errorf("cannot read sql file %v", err)
		return
	}
	sql := string(fileContent)
	_, err = db.Exec(sql)
	if err != nil {
		t.Errorf("cannot execute sql file %v", err)
		return
	}
}
