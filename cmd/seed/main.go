package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"staffdesk.com/staffdesk/utils"
)

// Row types matching the HR backend's MySQL schema. Kept local to the seed
// tool; the console itself only ever talks HTTP.

type Department struct {
	ID           string  `gorm:"column:id;primaryKey"`
	Name         string  `gorm:"column:name"`
	Salary       int64   `gorm:"column:salary"`
	OverTimeRate float64 `gorm:"column:over_time_rate"`
}

func (Department) TableName() string { return "department" }

type Employee struct {
	ID           string    `gorm:"column:id;primaryKey"`
	FirstName    string    `gorm:"column:first_name"`
	LastName     string    `gorm:"column:last_name"`
	NIC          string    `gorm:"column:nic"`
	Gender       string    `gorm:"column:gender"`
	Address      string    `gorm:"column:address"`
	Phone        string    `gorm:"column:phone"`
	Email        string    `gorm:"column:email"`
	Password     string    `gorm:"column:password"`
	Birthday     time.Time `gorm:"column:birthday"`
	DepartmentID string    `gorm:"column:department_id"`
	Role         string    `gorm:"column:role"`
}

func (Employee) TableName() string { return "employee" }

type Attendance struct {
	ID           string    `gorm:"column:id;primaryKey"`
	EmployeeID   string    `gorm:"column:employee_id"`
	DepartmentID string    `gorm:"column:department_id"`
	Status       string    `gorm:"column:status"`
	Date         time.Time `gorm:"column:date"`
}

func (Attendance) TableName() string { return "attendance" }

func main() {
	dsn := flag.String("dsn", "root:development@tcp(localhost:3306)/staffdesk?parseTime=true", "mysql dsn")
	days := flag.Int("days", 7, "days of attendance history ending today")
	flag.Parse()

	db, err := gorm.Open(mysql.Open(*dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	departments := []Department{
		{ID: "ENGI", Name: "Engineering", Salary: 95000, OverTimeRate: 1.5},
		{ID: "FINA", Name: "Finance", Salary: 78000, OverTimeRate: 1.25},
		{ID: "HUMA", Name: "Human Resources", Salary: 64000, OverTimeRate: 1.25},
	}
	if err := db.CreateInBatches(departments, 100).Error; err != nil {
		log.Fatalf("failed to insert departments: %v", err)
	}

	employees := []Employee{
		{ID: uuid.NewString(), FirstName: "Amara", LastName: "Perera", NIC: "902341234V", Gender: "Female", Address: "12 Lake Rd, Colombo", Phone: "0712345678", Email: "amara@staffdesk.local", Password: "admin123", Birthday: utils.MustParseDate("1990-08-21"), DepartmentID: "ENGI", Role: "ADMIN"},
		{ID: uuid.NewString(), FirstName: "Bimal", LastName: "Silva", NIC: "911202345V", Gender: "Male", Address: "88 Hill St, Kandy", Phone: "0723456789", Email: "bimal@staffdesk.local", Password: "user123", Birthday: utils.MustParseDate("1991-04-30"), DepartmentID: "ENGI", Role: "USER"},
		{ID: uuid.NewString(), FirstName: "Chamari", LastName: "Fernando", NIC: "925670123V", Gender: "Female", Address: "5 Beach Ave, Galle", Phone: "0734567890", Email: "chamari@staffdesk.local", Password: "user123", Birthday: utils.MustParseDate("1992-02-26"), DepartmentID: "FINA", Role: "USER"},
		{ID: uuid.NewString(), FirstName: "Dinesh", LastName: "Jayawardena", NIC: "930451234V", Gender: "Male", Address: "31 Temple Ln, Matara", Phone: "0745678901", Email: "dinesh@staffdesk.local", Password: "hr1234", Birthday: utils.MustParseDate("1993-02-14"), DepartmentID: "HUMA", Role: "HR"},
		{ID: uuid.NewString(), FirstName: "Eshani", LastName: "Wickramasinghe", NIC: "941230567V", Gender: "Female", Address: "7 Park Dr, Negombo", Phone: "0756789012", Email: "eshani@staffdesk.local", Password: "user123", Birthday: utils.MustParseDate("1994-05-02"), DepartmentID: "FINA", Role: "USER"},
	}
	if err := db.CreateInBatches(employees, 100).Error; err != nil {
		log.Fatalf("failed to insert employees: %v", err)
	}

	statuses := []string{"PRESENT", "PRESENT", "PRESENT", "HALF_DAY", "ABSENT", "NO_PAY"}
	var records []Attendance
	end := utils.Today()
	for d := end.AddDate(0, 0, -(*days - 1)); !d.After(end); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			continue
		}
		for i, emp := range employees {
			records = append(records, Attendance{
				ID:           uuid.NewString(),
				EmployeeID:   emp.ID,
				DepartmentID: emp.DepartmentID,
				Status:       statuses[(i+d.Day())%len(statuses)],
				Date:         d,
			})
		}
	}
	if err := db.CreateInBatches(records, 100).Error; err != nil {
		log.Fatalf("failed to insert attendance: %v", err)
	}

	fmt.Printf("Seeded %d departments, %d employees, %d attendance records.\n",
		len(departments), len(employees), len(records))
}
