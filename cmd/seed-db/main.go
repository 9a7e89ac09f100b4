// Command-line tool that wipes existing applications and seeds demo data
// for local development.
package main

import (
	"fmt"
	"log"
	"time"

	"JoinUsMaybe-backend/internal/database"
	"JoinUsMaybe-backend/internal/model"
	"JoinUsMaybe-backend/internal/pipeline"
	"JoinUsMaybe-backend/internal/utilities"

	"github.com/lib/pq"
)

type seedApplicant struct {
	username string
	position string
	skills   []string
}

var seedApplicants = []seedApplicant{
	{"demo_dev", model.PositionDeveloper, []string{"go", "postgres"}},
	{"demo_pm", model.PositionPM, []string{"roadmapping"}},
	{"demo_designer", model.PositionDesigner, []string{"figma"}},
}

func main() {
	instance, err := database.GetMainDB()
	if err != nil {
		log.Fatalf("Database failed to initialize: %v", err)
	}
	db := instance.DB

	// Start from a clean slate so seeding is repeatable
	if err := db.Where("1 = 1").Delete(&model.Response{}).Error; err != nil {
		log.Fatalf("failed to clear responses: %v", err)
	}
	if err := db.Where("1 = 1").Delete(&model.Review{}).Error; err != nil {
		log.Fatalf("failed to clear reviews: %v", err)
	}
	if err := db.Where("1 = 1").Delete(&model.Application{}).Error; err != nil {
		log.Fatalf("failed to clear applications: %v", err)
	}

	cycle := pipeline.CurrentCycle(time.Now())
	fmt.Printf("Seeding applications for %s %d\n", cycle.Semester, cycle.Year)

	hashed, err := utilities.HashPassword("DemoPass123!")
	if err != nil {
		log.Fatalf("failed to hash seed password: %v", err)
	}

	for _, sa := range seedApplicants {
		user := model.User{
			Username: sa.username,
			Password: hashed,
			Role:     model.RoleApplicant,
		}
		if err := db.Where("username = ?", sa.username).FirstOrCreate(&user).Error; err != nil {
			log.Fatalf("failed to create seed user %s: %v", sa.username, err)
		}

		application := model.Application{
			UserID:   user.ID,
			Year:     cycle.Year,
			Semester: cycle.Semester,
			Position: sa.position,
			Stage:    model.StageAppReceived,
			Skills:   pq.StringArray(sa.skills),
			Responses: []model.Response{
				{Question: "Why do you want to join?", Answer: "Demo seed answer"},
			},
		}
		if err := db.Create(&application).Error; err != nil {
			log.Fatalf("failed to create seed application for %s: %v", sa.username, err)
		}
		fmt.Printf("  %s -> %s application #%d\n", sa.username, sa.position, application.ID)
	}

	fmt.Println("Seeding done. Seed accounts use password DemoPass123!")
}
