package models

import "time"

// Тело запроса на создание пользователя. Пароль принимается только здесь,
// в ответах он не появляется — в БД хранится bcrypt-хеш.
type UserCreate struct {
	Username   string `json:"username" validate:"required,min=3,max=50"`
	Password   string `json:"password" validate:"required,min=6,max=72"`
	Name       string `json:"name" validate:"required,max=100"`
	Role       string `json:"role" validate:"max=50"`
	RoleID     *int   `json:"roleId"`
	Department string `json:"department" validate:"max=100"`
	Status     string `json:"status" validate:"max=20"`
}

// Частичные обновления: nil-поле означает "не трогать".

type UserUpdate struct {
	Password   *string `json:"password" validate:"omitempty,min=6,max=72"`
	Name       *string `json:"name" validate:"omitempty,max=100"`
	Role       *string `json:"role" validate:"omitempty,max=50"`
	RoleID     *int    `json:"roleId"`
	Department *string `json:"department" validate:"omitempty,max=100"`
	Status     *string `json:"status" validate:"omitempty,max=20"`
}

type RoleUpdate struct {
	Name        *string `json:"name" validate:"omitempty,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

type CompanyUpdate struct {
	Name          *string `json:"name" validate:"omitempty,max=200"`
	CIN           *string `json:"cin"`
	PAN           *string `json:"pan"`
	GST           *string `json:"gst"`
	ContactPerson *string `json:"contactPerson"`
	Email         *string `json:"email" validate:"omitempty,email"`
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
	Status        *string `json:"status"`
}

type ClientUpdate struct {
	Name          *string `json:"name" validate:"omitempty,max=200"`
	ContactPerson *string `json:"contactPerson"`
	Email         *string `json:"email" validate:"omitempty,email"`
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
}

type CustomerUpdate struct {
	Name          *string    `json:"name" validate:"omitempty,max=200"`
	Company       *string    `json:"company"`
	ContactPerson *string    `json:"contactPerson"`
	Email         *string    `json:"email" validate:"omitempty,email"`
	Phone         *string    `json:"phone"`
	Category      *string    `json:"category"`
	Status        *string    `json:"status"`
	LastContact   *time.Time `json:"lastContact"`
}

type TenderUpdate struct {
	ReferenceNumber *string       `json:"referenceNumber" validate:"omitempty,max=100"`
	Title           *string       `json:"title" validate:"omitempty,max=200"`
	ClientID        *int          `json:"clientId"`
	CompanyID       *int          `json:"companyId"`
	Department      *string       `json:"department"`
	PublishDate     *time.Time    `json:"publishDate"`
	DueDate         *time.Time    `json:"dueDate"`
	Status          *TenderStatus `json:"status" validate:"omitempty,oneof=open pending closed awarded"`
	EstimatedValue  *string       `json:"estimatedValue"`
	Description     *string       `json:"description" validate:"omitempty,max=2000"`
}

type LeadUpdate struct {
	Title         *string     `json:"title" validate:"omitempty,max=200"`
	CompanyID     *int        `json:"companyId"`
	ContactPerson *string     `json:"contactPerson"`
	Source        *string     `json:"source"`
	EMDValue      *string     `json:"emdValue"`
	Status        *LeadStatus `json:"status" validate:"omitempty,oneof=New Qualified Bidding Won Lost"`
	AssignedTo    *int        `json:"assignedTo"`
	TenderRef     *string     `json:"tenderId"`
	BidStartDate  *time.Time  `json:"bidStartDate"`
	BidEndDate    *time.Time  `json:"bidEndDate"`
	Notes         *string     `json:"notes"`
}
