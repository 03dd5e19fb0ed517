package rest

import (
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type createEntrepreneurRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	Company  string `json:"company" binding:"required"`
	Password string `json:"password" binding:"omitempty,min=8,maxbytes=72"`
}

type createStudentGroupRequest struct {
	RepresentativeName string   `json:"representativeName" binding:"required"`
	Email              string   `json:"email" binding:"required,email"`
	RA                 string   `json:"ra" binding:"required"`
	Semester           int      `json:"semester" binding:"required,gte=1,lte=6"`
	Members            []string `json:"members" binding:"required,min=1,dive,required"`
	Interests          []string `json:"interests" binding:"required,min=1,dive,required"`
	Password           string   `json:"password" binding:"omitempty,min=8,maxbytes=72"`
}

type createProjectRequest struct {
	EntrepreneurID string   `json:"entrepreneurId" binding:"required"`
	Title          string   `json:"title" binding:"required"`
	Description    string   `json:"description" binding:"required"`
	ProjectType    string   `json:"projectType" binding:"required,oneof=web_system mobile_app landing_page ecommerce other"`
	BusinessArea   string   `json:"businessArea" binding:"required"`
	Deadline       string   `json:"deadline" binding:"required,oneof=1_month 1_3_months 3_6_months 6_plus_months"`
	Complexity     string   `json:"complexity" binding:"required,oneof=basic intermediate advanced"`
	Technologies   []string `json:"technologies" binding:"required,min=1,dive,required"`
}

type createProjectInterestRequest struct {
	ProjectID      string  `json:"projectId" binding:"required"`
	StudentGroupID string  `json:"studentGroupId" binding:"required"`
	Message        *string `json:"message"`
}

type createEventRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description" binding:"required"`
	Date        time.Time `json:"date" binding:"required"`
	StartTime   string    `json:"startTime" binding:"required,datetime=15:04"`
	EndTime     string    `json:"endTime" binding:"required,datetime=15:04"`
	Location    string    `json:"location" binding:"required"`
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

var validationOnce sync.Once

// registerValidation makes validation errors report JSON field names and adds
// the maxbytes rule.
func registerValidation() {
	validationOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		if err := v.RegisterValidation("maxbytes", maxBytes); err != nil {
			panic("rest: register maxbytes: " + err.Error())
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})
	})
}

// maxBytes bounds the UTF-8 length of a string; bcrypt rejects passwords over
// 72 bytes whatever their character count.
func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(fl.Field().String()) <= limit
}
