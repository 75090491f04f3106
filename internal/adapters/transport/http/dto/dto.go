package dto

type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name"     validate:"required,max=100"`
	Role     string `json:"role"     validate:"omitempty,oneof=customer guide"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest carries a partial profile patch. A password change is
// applied only when currentPassword and newPassword are both present.
type UpdateProfileRequest struct {
	Name            *string `json:"name"            validate:"omitempty,max=100"`
	CurrentPassword string  `json:"currentPassword" validate:"omitempty"`
	NewPassword     string  `json:"newPassword"     validate:"omitempty,min=8"`
}

type GuideLocation struct {
	District string `json:"district" validate:"required,max=100"`
	State    string `json:"state"    validate:"required,max=100"`
}

type GuidePricing struct {
	HalfDay  float64  `json:"halfDay"  validate:"required,gt=0"`
	FullDay  float64  `json:"fullDay"  validate:"required,gt=0"`
	MultiDay *float64 `json:"multiDay" validate:"omitempty,gt=0"`
	Workshop *float64 `json:"workshop" validate:"omitempty,gt=0"`
}

type CreateGuideRequest struct {
	Name            string        `json:"name"            validate:"required,max=100"`
	Bio             string        `json:"bio"             validate:"required,max=2000"`
	Specializations []string      `json:"specializations" validate:"required,min=1,dive,required"`
	Languages       []string      `json:"languages"       validate:"required,min=1,dive,required"`
	Experience      int           `json:"experience"      validate:"gte=0,lte=60"`
	Location        GuideLocation `json:"location"`
	Pricing         GuidePricing  `json:"pricing"`
	Certifications  []string      `json:"certifications"  validate:"omitempty,dive,required"`
	Availability    string        `json:"availability"    validate:"omitempty,oneof=available busy unavailable"`
}

// UpdateGuideRequest patches only the supplied fields. Pricing and location
// replace as a whole when present so required sub-fields cannot be dropped.
type UpdateGuideRequest struct {
	Name            *string        `json:"name"            validate:"omitempty,max=100"`
	Bio             *string        `json:"bio"             validate:"omitempty,max=2000"`
	Specializations []string       `json:"specializations" validate:"omitempty,min=1,dive,required"`
	Languages       []string       `json:"languages"       validate:"omitempty,min=1,dive,required"`
	Experience      *int           `json:"experience"      validate:"omitempty,gte=0,lte=60"`
	Location        *GuideLocation `json:"location"`
	Pricing         *GuidePricing  `json:"pricing"`
	Certifications  []string       `json:"certifications"  validate:"omitempty,dive,required"`
	Availability    *string        `json:"availability"    validate:"omitempty,oneof=available busy unavailable"`
}

// ListGuidesQuery is bound from query parameters on GET /guides.
type ListGuidesQuery struct {
	Specialization string  `form:"specialization"`
	Language       string  `form:"language"`
	District       string  `form:"district"`
	State          string  `form:"state"`
	Availability   string  `form:"availability" validate:"omitempty,oneof=available busy unavailable"`
	MinExperience  int     `form:"minExperience" validate:"omitempty,gte=0"`
	MaxRate        float64 `form:"maxRate" validate:"omitempty,gt=0"`
	Page           int     `form:"page"`
	Limit          int     `form:"limit"`
}
