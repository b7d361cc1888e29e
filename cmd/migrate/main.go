package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	database "cloud.google.com/go/spanner/admin/database/apiv1"
	"cloud.google.com/go/spanner/admin/database/apiv1/databasepb"
	instance "cloud.google.com/go/spanner/admin/instance/apiv1"
	"cloud.google.com/go/spanner/admin/instance/apiv1/instancepb"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	projectID  = flag.String("project", getEnvOrDefault("SPANNER_PROJECT_ID", "test-project"), "GCP project ID")
	instanceID = flag.String("instance", getEnvOrDefault("SPANNER_INSTANCE_ID", "dev-instance"), "Spanner instance ID")
	databaseID = flag.String("database", getEnvOrDefault("SPANNER_DATABASE_ID", "storefront-db"), "Spanner database ID")
	migrateDir = flag.String("migrations", "migrations", "Directory containing migration SQL files")
)

func main() {
	flag.Parse()

	ctx := context.Background()

	if host := os.Getenv("SPANNER_EMULATOR_HOST"); host != "" {
		log.Printf("Using Spanner emulator at %s", host)
	}

	m, err := newMigrator(ctx)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	defer m.close()

	if err := m.run(ctx); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations completed successfully!")
}

// migrator holds the admin clients for one project/instance/database.
type migrator struct {
	instances *instance.InstanceAdminClient
	databases *database.DatabaseAdminClient

	projectPath  string
	instancePath string
	databasePath string
}

func newMigrator(ctx context.Context) (*migrator, error) {
	instances, err := instance.NewInstanceAdminClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create instance admin client: %w", err)
	}

	databases, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		instances.Close()
		return nil, fmt.Errorf("failed to create database admin client: %w", err)
	}

	projectPath := "projects/" + *projectID
	instancePath := projectPath + "/instances/" + *instanceID
	return &migrator{
		instances:    instances,
		databases:    databases,
		projectPath:  projectPath,
		instancePath: instancePath,
		databasePath: instancePath + "/databases/" + *databaseID,
	}, nil
}

func (m *migrator) close() {
	m.databases.Close()
	m.instances.Close()
}

func (m *migrator) run(ctx context.Context) error {
	if err := m.ensureInstance(ctx); err != nil {
		return fmt.Errorf("failed to ensure instance: %w", err)
	}
	if err := m.ensureDatabase(ctx); err != nil {
		return fmt.Errorf("failed to ensure database: %w", err)
	}
	if err := m.apply(ctx); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

func (m *migrator) ensureInstance(ctx context.Context) error {
	log.Printf("Ensuring instance %s exists...", *instanceID)

	_, err := m.instances.GetInstance(ctx, &instancepb.GetInstanceRequest{Name: m.instancePath})
	switch {
	case err == nil:
		log.Println("Instance already exists")
		return nil
	case status.Code(err) != codes.NotFound:
		log.Printf("Warning: unexpected error checking instance: %v", err)
		return nil
	}

	log.Println("Creating instance...")
	op, err := m.instances.CreateInstance(ctx, &instancepb.CreateInstanceRequest{
		Parent:     m.projectPath,
		InstanceId: *instanceID,
		Instance: &instancepb.Instance{
			Config:      m.projectPath + "/instanceConfigs/emulator-config",
			DisplayName: "Storefront",
			NodeCount:   1,
		},
	})
	if status.Code(err) == codes.AlreadyExists {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to create instance: %w", err)
	}

	// The emulator may finish the operation before Wait is called.
	if _, err := op.Wait(ctx); err != nil && status.Code(err) != codes.AlreadyExists {
		log.Printf("Warning during instance creation: %v", err)
	}

	log.Println("Instance created successfully")
	return nil
}

func (m *migrator) ensureDatabase(ctx context.Context) error {
	log.Printf("Ensuring database %s exists...", *databaseID)

	_, err := m.databases.GetDatabase(ctx, &databasepb.GetDatabaseRequest{Name: m.databasePath})
	switch {
	case err == nil:
		log.Println("Database already exists")
		return nil
	case status.Code(err) != codes.NotFound:
		if os.Getenv("SPANNER_EMULATOR_HOST") != "" {
			log.Printf("Proceeding with database (emulator mode): %v", err)
			return nil
		}
		return fmt.Errorf("failed to check database: %w", err)
	}

	log.Println("Creating database...")
	op, err := m.databases.CreateDatabase(ctx, &databasepb.CreateDatabaseRequest{
		Parent:          m.instancePath,
		CreateStatement: fmt.Sprintf("CREATE DATABASE `%s`", *databaseID),
	})
	if status.Code(err) == codes.AlreadyExists {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}

	if _, err := op.Wait(ctx); err != nil {
		return fmt.Errorf("failed to wait for database creation: %w", err)
	}

	log.Println("Database created successfully")
	return nil
}

// apply runs every *.sql file in name order, skipping CREATE statements for
// objects the database already has.
func (m *migrator) apply(ctx context.Context) error {
	log.Printf("Applying migrations from %s...", *migrateDir)

	files, err := filepath.Glob(filepath.Join(*migrateDir, "*.sql"))
	if err != nil {
		return fmt.Errorf("failed to list migration files: %w", err)
	}
	if len(files) == 0 {
		log.Println("No migration files found")
		return nil
	}
	sort.Strings(files)

	ddl, err := m.databases.GetDatabaseDdl(ctx, &databasepb.GetDatabaseDdlRequest{Database: m.databasePath})
	if err != nil {
		return fmt.Errorf("failed to read current schema: %w", err)
	}
	existing := existingObjects(ddl.GetStatements())

	for _, file := range files {
		name := filepath.Base(file)

		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", file, err)
		}

		statements := pendingStatements(splitDDLStatements(string(content)), existing)
		if len(statements) == 0 {
			log.Printf("Skipping %s (already applied)", name)
			continue
		}

		log.Printf("Applying %s (%d statements)...", name, len(statements))
		op, err := m.databases.UpdateDatabaseDdl(ctx, &databasepb.UpdateDatabaseDdlRequest{
			Database:   m.databasePath,
			Statements: statements,
		})
		if err != nil {
			return fmt.Errorf("failed to start DDL update for %s: %w", name, err)
		}
		if err := op.Wait(ctx); err != nil {
			return fmt.Errorf("failed to apply DDL for %s: %w", name, err)
		}

		for _, stmt := range statements {
			if obj, ok := createdObject(stmt); ok {
				existing[obj] = true
			}
		}
		log.Printf("Successfully applied %s", name)
	}

	return nil
}

// pendingStatements drops CREATE statements for tables and indexes that
// already exist. Other statements are always kept.
func pendingStatements(statements []string, existing map[string]bool) []string {
	var out []string
	for _, stmt := range statements {
		if name, ok := createdObject(stmt); ok && existing[name] {
			continue
		}
		out = append(out, stmt)
	}
	return out
}

func existingObjects(ddl []string) map[string]bool {
	names := make(map[string]bool)
	for _, stmt := range ddl {
		if name, ok := createdObject(stmt); ok {
			names[name] = true
		}
	}
	return names
}

// createdObject returns the lowercased name a CREATE TABLE or CREATE INDEX
// statement defines.
func createdObject(stmt string) (string, bool) {
	fields := strings.Fields(stmt)
	if len(fields) < 3 || !strings.EqualFold(fields[0], "CREATE") {
		return "", false
	}

	i := 1
	if strings.EqualFold(fields[i], "UNIQUE") || strings.EqualFold(fields[i], "NULL_FILTERED") {
		i++
	}
	if i+1 >= len(fields) {
		return "", false
	}
	kind := strings.ToUpper(fields[i])
	if kind != "TABLE" && kind != "INDEX" {
		return "", false
	}

	name := fields[i+1]
	if j := strings.IndexByte(name, '('); j >= 0 {
		name = name[:j]
	}
	return strings.ToLower(strings.Trim(name, "`")), true
}

// splitDDLStatements drops comment lines and splits on semicolons.
func splitDDLStatements(content string) []string {
	var kept []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line != "" && !strings.HasPrefix(line, "--") {
			kept = append(kept, line)
		}
	}

	var statements []string
	for _, stmt := range strings.Split(strings.Join(kept, "\n"), ";") {
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			statements = append(statements, stmt)
		}
	}
	return statements
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
