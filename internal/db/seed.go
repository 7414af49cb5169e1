package db

import (
	"context"
	"fmt"
	"time"

	"tourism/internal/auth"
)

type seedPrincipal struct {
	table    string
	name     string
	email    string
	password string
	role     string
	phone    string
	location string
}

var seedPrincipals = []seedPrincipal{
	{table: "admin", name: "Super Admin", email: "admin@example.com", password: "admin123", role: "admin"},
	{table: "users", name: "Test User", email: "user@example.com", password: "user123", role: "user", phone: "9876543210", location: "Delhi"},
}

var seedPackage = struct {
	title, destination, description, duration, imageURL string
	price                                               int64
}{
	title:       "Goa Beach Tour",
	destination: "Goa",
	description: "Relax on the beaches of Goa with 3 nights stay and fun activities.",
	duration:    "4 Days / 3 Nights",
	imageURL:    "https://images.unsplash.com/photo-1507525428034-b723cf961d3e",
	price:       12000,
}

// Seed inserts the default admin, sample user and sample package when they
// are missing. Existing rows are left untouched.
func Seed(ctx context.Context, q Querier) (inserted int, err error) {
	now := time.Now()
	for _, p := range seedPrincipals {
		exists, err := rowExists(ctx, q, "SELECT COUNT(*) FROM "+p.table+" WHERE email = ?", p.email)
		if err != nil {
			return inserted, err
		}
		if exists {
			continue
		}
		hash, err := auth.HashPassword(p.password)
		if err != nil {
			return inserted, fmt.Errorf("hash seed password: %w", err)
		}
		if p.table == "users" {
			_, err = q.ExecContext(ctx, `
				INSERT INTO users (name, email, password, role, phone, location, registration_date)
				VALUES (?, ?, ?, ?, ?, ?, ?)
			`, p.name, p.email, hash, p.role, p.phone, p.location, now)
		} else {
			_, err = q.ExecContext(ctx, `
				INSERT INTO admin (name, email, password, role, registration_date)
				VALUES (?, ?, ?, ?, ?)
			`, p.name, p.email, hash, p.role, now)
		}
		if err != nil {
			return inserted, fmt.Errorf("seed %s: %w", p.table, err)
		}
		inserted++
	}

	exists, err := rowExists(ctx, q, "SELECT COUNT(*) FROM packages WHERE title = ?", seedPackage.title)
	if err != nil {
		return inserted, err
	}
	if !exists {
		if _, err := q.ExecContext(ctx, `
			INSERT INTO packages (title, destination, description, price, duration, image_url, status)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, seedPackage.title, seedPackage.destination, seedPackage.description, seedPackage.price,
			seedPackage.duration, seedPackage.imageURL, "Available"); err != nil {
			return inserted, fmt.Errorf("seed packages: %w", err)
		}
		inserted++
	}
	return inserted, nil
}

func rowExists(ctx context.Context, q Querier, query string, args ...any) (bool, error) {
	var n int64
	if err := q.QueryRowxContext(ctx, query, args...).Scan(&n); err != nil {
		return false, fmt.Errorf("seed lookup: %w", err)
	}
	return n > 0, nil
}
