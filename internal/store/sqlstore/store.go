package sqlstore

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"           // Postgres driver
	_ "github.com/mattn/go-sqlite3" // SQLite driver
	"github.com/unify-app/unify/internal/models"
)

type SQLStore struct {
	db         *sql.DB
	driverName string
}

func New(driverName, dataSourceName string) (*SQLStore, error) {
	db, err := sql.Open(driverName, dataSourceName)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	return &SQLStore{db: db, driverName: driverName}, nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}

// CreateSchema issues the one-time DDL. The server never calls this; it runs
// from cmd/initdb (and from test setup against in-memory SQLite).
func (s *SQLStore) CreateSchema() error {
	query := `
	CREATE TABLE IF NOT EXISTS users (
		user_id  SERIAL PRIMARY KEY,
		username TEXT UNIQUE NOT NULL,
		password TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS conversations (
		conversation_id SERIAL PRIMARY KEY,
		user1_id        INTEGER REFERENCES users(user_id),
		user2_id        INTEGER REFERENCES users(user_id),
		started_at      TIMESTAMPTZ DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS messages (
		message_id      SERIAL PRIMARY KEY,
		conversation_id INTEGER REFERENCES conversations(conversation_id),
		sender_id       INTEGER REFERENCES users(user_id),
		content         TEXT NOT NULL,
		created_at      TIMESTAMPTZ DEFAULT NOW()
	);
	`

	if s.driverName == "sqlite3" {
		// Adjust for SQLite syntax
		query = strings.ReplaceAll(query, "SERIAL PRIMARY KEY", "INTEGER PRIMARY KEY AUTOINCREMENT")
		query = strings.ReplaceAll(query, "TIMESTAMPTZ DEFAULT NOW()", "DATETIME DEFAULT CURRENT_TIMESTAMP")
	}

	_, err := s.db.Exec(query)
	return err
}

// Helper to handle placeholders
func (s *SQLStore) rebind(query string) string {
	if s.driverName == "postgres" {
		// Replace ? with $1, $2, etc.
		n := strings.Count(query, "?")
		for i := 1; i <= n; i++ {
			query = strings.Replace(query, "?", fmt.Sprintf("$%d", i), 1)
		}
	}
	return query
}

func (s *SQLStore) CreateUser(username, passwordHash string) (int, error) {
	var id int
	query := s.rebind("INSERT INTO users (username, password) VALUES (?, ?) RETURNING user_id")
	err := s.db.QueryRow(query, username, passwordHash).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *SQLStore) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	query := s.rebind("SELECT user_id, username, password FROM users WHERE username = ?")
	err := s.db.QueryRow(query, username).Scan(&user.ID, &user.Username, &user.Password)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *SQLStore) UsernameExists(username string) (bool, error) {
	var exists bool
	query := s.rebind("SELECT EXISTS(SELECT 1 FROM users WHERE username = ?)")
	err := s.db.QueryRow(query, username).Scan(&exists)
	return exists, err
}
