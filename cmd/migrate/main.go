// Command migrate bootstraps the full database schema. Any failure is
// fatal: the process logs the error and exits non-zero so deploy
// scripts stop before starting the server against a broken schema.
package main

import (
	"log"

	"pelita-schools/app/config"
)

var schema = []string{
	`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`,

	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL DEFAULT '',
		phone VARCHAR(20),
		role TEXT NOT NULL CHECK (role IN ('admin', 'teacher', 'student')),
		is_active BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		deleted_at TIMESTAMPTZ
	)`,

	`CREATE TABLE IF NOT EXISTS user_sessions (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		expires_at TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_user_sessions_user_id ON user_sessions(user_id)`,

	`CREATE TABLE IF NOT EXISTS classes (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name TEXT NOT NULL,
		level INT NOT NULL,
		homeroom_teacher_id UUID REFERENCES users(id) ON DELETE SET NULL,
		is_active BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS student_profiles (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id UUID NOT NULL UNIQUE REFERENCES users(id) ON DELETE CASCADE,
		nis TEXT NOT NULL UNIQUE,
		class_id UUID REFERENCES classes(id) ON DELETE SET NULL,
		guardian_name TEXT,
		guardian_phone TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_student_profiles_class_id ON student_profiles(class_id)`,

	`CREATE TABLE IF NOT EXISTS teacher_profiles (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id UUID NOT NULL UNIQUE REFERENCES users(id) ON DELETE CASCADE,
		nip TEXT NOT NULL UNIQUE,
		subject TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS smtp_settings (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		host TEXT NOT NULL,
		port INT NOT NULL,
		secure BOOLEAN NOT NULL DEFAULT false,
		username TEXT NOT NULL DEFAULT '',
		password TEXT NOT NULL DEFAULT '',
		from_name TEXT NOT NULL DEFAULT '',
		from_email TEXT NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT false,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS landing_media (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		tipe TEXT NOT NULL CHECK (tipe IN ('hero', 'gallery', 'video')),
		judul TEXT NOT NULL,
		url TEXT NOT NULL,
		aspect_ratio TEXT NOT NULL DEFAULT '16:9',
		urutan INT NOT NULL DEFAULT 0,
		is_active BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_landing_media_urutan ON landing_media(urutan)`,

	`CREATE TABLE IF NOT EXISTS events (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		start_date TIMESTAMPTZ NOT NULL,
		end_date TIMESTAMPTZ NOT NULL,
		type TEXT NOT NULL DEFAULT 'academic',
		location TEXT NOT NULL DEFAULT '',
		is_public BOOLEAN NOT NULL DEFAULT false,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

func main() {
	log.Println("Starting schema bootstrap...")

	config.LoadEnv()
	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			log.Fatalf("Schema bootstrap failed: %v\nstatement: %s", err, stmt)
		}
	}

	log.Println("Schema bootstrap completed successfully")
}
