package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		_, db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		defaultStaff := []struct {
			ID         string
			Name       string
			Email      string
			Department string
			Role       string
			EmployeeID string
		}{
			{"1", "Sarah Chen", "sarah.chen@company.com", "Engineering", "Developer", "EMP001"},
			{"2", "James Wilson", "james.wilson@company.com", "HR", "HR Manager", "EMP002"},
			{"3", "Maria Garcia", "maria.garcia@company.com", "Operations", "Operations Lead", "EMP003"},
		}

		var staffCount int64
		if err := db.Raw("SELECT COUNT(*) FROM staff").Scan(&staffCount).Error; err != nil {
			log.Fatalf("failed to count staff: %v", err)
		}

		if staffCount == 0 {
			for _, s := range defaultStaff {
				if err := db.Exec(
					"INSERT INTO staff (id, name, email, department, role, employee_id, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, now(), now())",
					s.ID, s.Name, s.Email, s.Department, s.Role, s.EmployeeID,
				).Error; err != nil {
					log.Fatalf("failed to insert staff %s: %v", s.Name, err)
				}
				fmt.Println("Seeded staff:", s.Name)
			}
		} else {
			fmt.Println("staff table not empty; skipping staff seed")
		}

		departments := []string{
			"Engineering",
			"HR",
			"Operations",
			"Finance",
			"Sales",
			"Marketing",
		}

		for _, name := range departments {
			var exists int
			row := db.Raw("SELECT 1 FROM departments WHERE name = ?", name).Row()
			if err := row.Scan(&exists); err != nil {
				if err := db.Exec(
					"INSERT INTO departments (name, is_active, created_at) VALUES (?, true, now())", name,
				).Error; err != nil {
					log.Fatalf("failed to insert department %s: %v", name, err)
				}
				fmt.Printf("Seeded department: %s\n", name)
			}
		}

		fmt.Println("Departments seeded successfully")
	},
}
