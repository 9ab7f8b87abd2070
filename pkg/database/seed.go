package database

import (
	"encoding/json"
	"log"

	"skillmatrix/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed loads a demo catalog on an empty database: accounts for the identity
// collaborator, the team/project/component hierarchy, question banks and one
// assessment per (component, level).
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	newUser := func(email, fullName string, role model.UserRole) *model.User {
		u := &model.User{
			Email:         email,
			FullName:      fullName,
			Role:          role,
			Password:      string(hash),
			EmailVerified: true,
			Active:        true,
		}
		db.Create(u)
		return u
	}

	admin := newUser("admin@skillmatrix.com", "Sarah Chen", model.RoleRoot)
	newUser("james@skillmatrix.com", "James Wilson", model.RoleTeamAdmin)
	alex := newUser("alex@skillmatrix.com", "Alex Johnson", model.RoleDeveloper)
	newUser("priya@skillmatrix.com", "Priya Patel", model.RoleDeveloper)
	newUser("mike@skillmatrix.com", "Mike Thompson", model.RoleDeveloper)

	platform := &model.Team{Name: "Platform Engineering", Description: "Core platform and infrastructure team"}
	product := &model.Team{Name: "Product Development", Description: "Customer-facing product development"}
	db.Create(platform)
	db.Create(product)

	ecommerce := &model.Project{TeamID: platform.ID, Name: "E-Commerce Platform", Description: "Main e-commerce web application"}
	mobile := &model.Project{TeamID: product.ID, Name: "Mobile App", Description: "iOS and Android mobile application"}
	db.Create(ecommerce)
	db.Create(mobile)

	goBackend := &model.Component{ProjectID: ecommerce.ID, Name: "Go Backend", TechStack: "Go", Description: "Backend services"}
	reactFrontend := &model.Component{ProjectID: ecommerce.ID, Name: "React Frontend", TechStack: "React", Description: "React TypeScript frontend"}
	postgresDB := &model.Component{ProjectID: ecommerce.ID, Name: "PostgreSQL DB", TechStack: "PostgreSQL", Description: "Database layer and migrations"}
	nodeAPI := &model.Component{ProjectID: mobile.ID, Name: "Node.js API", TechStack: "Node.js", Description: "Mobile backend API"}
	db.Create(goBackend)
	db.Create(reactFrontend)
	db.Create(postgresDB)
	db.Create(nodeAPI)

	seedGoQuestions(db, goBackend.ID)
	seedReactQuestions(db, reactFrontend.ID)
	seedPostgresQuestions(db, postgresDB.ID)

	for _, component := range []*model.Component{goBackend, reactFrontend, postgresDB} {
		for level := 1; level <= 3; level++ {
			db.Create(&model.Assessment{
				ComponentID:        component.ID,
				Level:              level,
				PassMarkPercentage: 70,
				NumberOfQuestions:  5,
				CreatedByID:        &admin.ID,
			})
		}
	}

	var firstAssessment model.Assessment
	if err := db.Where("component_id = ? AND level = ?", goBackend.ID, 1).First(&firstAssessment).Error; err == nil {
		db.Create(&model.AssessmentInvite{
			DeveloperID:  alex.ID,
			AssessmentID: firstAssessment.ID,
			Status:       model.InvitePending,
		})
	}

	log.Println("Seed data loaded")
	return nil
}

func mcq(db *gorm.DB, componentID uint, level int, text string, options []string, answer string) {
	opts, _ := json.Marshal(options)
	db.Create(&model.Question{
		ComponentID:     componentID,
		QuestionText:    text,
		Type:            model.QuestionMCQ,
		DifficultyLevel: level,
		Options:         string(opts),
		CorrectAnswer:   answer,
	})
}

func fib(db *gorm.DB, componentID uint, level int, text, answer string) {
	db.Create(&model.Question{
		ComponentID:     componentID,
		QuestionText:    text,
		Type:            model.QuestionFillInBlank,
		DifficultyLevel: level,
		CorrectAnswer:   answer,
	})
}

func seedGoQuestions(db *gorm.DB, id uint) {
	mcq(db, id, 1, "Which keyword declares a new variable with inferred type?", []string{"var", ":=", "let", "def"}, ":=")
	mcq(db, id, 1, "What is the zero value of a pointer?", []string{"0", "nil", "undefined", "empty struct"}, "nil")
	mcq(db, id, 1, "Which construct is used for all loops in Go?", []string{"for", "while", "loop", "repeat"}, "for")
	mcq(db, id, 2, "What does a nil map lookup return?", []string{"panic", "the zero value", "an error", "nil only"}, "the zero value")
	mcq(db, id, 2, "Which primitive coordinates goroutine completion?", []string{"sync.WaitGroup", "time.Sleep", "runtime.Gosched", "defer"}, "sync.WaitGroup")
	fib(db, id, 2, "Name the built-in that appends to a slice.", "append")
	mcq(db, id, 3, "Which channel operation blocks on an unbuffered channel with no receiver?", []string{"send", "close", "len", "cap"}, "send")
	fib(db, id, 3, "Which statement multiplexes over multiple channel operations?", "select")
}

func seedReactQuestions(db *gorm.DB, id uint) {
	mcq(db, id, 1, "Which hook stores local component state?", []string{"useState", "useEffect", "useMemo", "useRef"}, "useState")
	mcq(db, id, 1, "What is JSX compiled to?", []string{"HTML", "function calls", "CSS", "JSON"}, "function calls")
	mcq(db, id, 2, "When does useEffect with an empty dependency array run?", []string{"every render", "once after mount", "never", "on unmount only"}, "once after mount")
	fib(db, id, 2, "Which prop uniquely identifies list items for reconciliation?", "key")
	mcq(db, id, 3, "Which hook memoizes an expensive computation?", []string{"useMemo", "useState", "useContext", "useReducer"}, "useMemo")
	fib(db, id, 3, "Name the API for passing data through the tree without props.", "context")
}

func seedPostgresQuestions(db *gorm.DB, id uint) {
	mcq(db, id, 1, "Which statement retrieves rows from a table?", []string{"SELECT", "FETCH", "GET", "SHOW"}, "SELECT")
	mcq(db, id, 1, "Which clause filters rows?", []string{"WHERE", "HAVING", "FILTER", "LIMIT"}, "WHERE")
	mcq(db, id, 2, "Which join keeps unmatched rows from the left table?", []string{"INNER JOIN", "LEFT JOIN", "CROSS JOIN", "FULL JOIN"}, "LEFT JOIN")
	fib(db, id, 2, "Name the command that shows a query's execution plan.", "EXPLAIN")
	mcq(db, id, 3, "Which index type serves equality and range queries by default?", []string{"btree", "hash", "gin", "brin"}, "btree")
	fib(db, id, 3, "Which isolation level prevents non-repeatable reads but not phantoms in the SQL standard?", "repeatable read")
}
