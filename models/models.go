package models

import "time"

// Статус тендера — закрытый набор значений
type TenderStatus string

const (
	TenderOpen    TenderStatus = "open"
	TenderPending TenderStatus = "pending"
	TenderClosed  TenderStatus = "closed"
	TenderAwarded TenderStatus = "awarded"
)

// Статус лида
type LeadStatus string

const (
	LeadNew        LeadStatus = "New"
	LeadQualified  LeadStatus = "Qualified"
	LeadBidding    LeadStatus = "Bidding"
	LeadWon        LeadStatus = "Won"
	LeadLost       LeadStatus = "Lost"
)

// Тип записи в журнале активности
type ActivityType string

const (
	ActivityTenderCreated   ActivityType = "tender_created"
	ActivityTenderUpdated   ActivityType = "tender_updated"
	ActivityTenderDeleted   ActivityType = "tender_deleted"
	ActivityCustomerCreated ActivityType = "customer_created"
	ActivityCustomerUpdated ActivityType = "customer_updated"
	ActivityCustomerDeleted ActivityType = "customer_deleted"
	ActivityLeadCreated     ActivityType = "lead_created"
	ActivityLeadUpdated     ActivityType = "lead_updated"
	ActivityLeadDeleted     ActivityType = "lead_deleted"
	ActivityCompanyCreated  ActivityType = "company_created"
	ActivityCompanyUpdated  ActivityType = "company_updated"
	ActivityCompanyDeleted  ActivityType = "company_deleted"
)

// Сущность Пользователя
type User struct {
	ID           int        `db:"id" json:"id"`
	Username     string     `db:"username" json:"username"`
	PasswordHash string     `db:"password_hash" json:"-"`
	Name         string     `db:"name" json:"name"`
	Role         string     `db:"role" json:"role"`
	RoleID       *int       `db:"role_id" json:"roleId"`
	Department   string     `db:"department" json:"department"`
	Status       string     `db:"status" json:"status"`
	LastLogin    *time.Time `db:"last_login" json:"lastLogin"`
	CreatedAt    time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updatedAt"`
}

// Сущность Роли
type Role struct {
	ID          int       `db:"id" json:"id"`
	Name        string    `db:"name" json:"name" validate:"required,max=100"`
	Description string    `db:"description" json:"description" validate:"max=500"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// Сущность Компании (подрядчик / участник тендеров)
type Company struct {
	ID            int       `db:"id" json:"id"`
	Name          string    `db:"name" json:"name" validate:"required,max=200"`
	CIN           string    `db:"cin" json:"cin"`
	PAN           string    `db:"pan" json:"pan"`
	GST           string    `db:"gst" json:"gst"`
	ContactPerson string    `db:"contact_person" json:"contactPerson"`
	Email         string    `db:"email" json:"email" validate:"omitempty,email"`
	Phone         string    `db:"phone" json:"phone"`
	Address       string    `db:"address" json:"address"`
	Status        string    `db:"status" json:"status"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `db:"updated_at" json:"updatedAt"`
}

// Сущность Клиента (заказчик тендера)
type Client struct {
	ID            int       `db:"id" json:"id"`
	Name          string    `db:"name" json:"name" validate:"required,max=200"`
	ContactPerson string    `db:"contact_person" json:"contactPerson"`
	Email         string    `db:"email" json:"email" validate:"omitempty,email"`
	Phone         string    `db:"phone" json:"phone"`
	Address       string    `db:"address" json:"address"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `db:"updated_at" json:"updatedAt"`
}

// Сущность Заказчика (независимая, без внешних ключей)
type Customer struct {
	ID            int        `db:"id" json:"id"`
	Name          string     `db:"name" json:"name" validate:"required,max=200"`
	Company       string     `db:"company" json:"company"`
	ContactPerson string     `db:"contact_person" json:"contactPerson"`
	Email         string     `db:"email" json:"email" validate:"omitempty,email"`
	Phone         string     `db:"phone" json:"phone"`
	Category      string     `db:"category" json:"category"`
	Status        string     `db:"status" json:"status"`
	LastContact   *time.Time `db:"last_contact" json:"lastContact"`
	CreatedAt     time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updatedAt"`
}

// Сущность Тендера
type Tender struct {
	ID              int          `db:"id" json:"id"`
	ReferenceNumber string       `db:"reference_number" json:"referenceNumber" validate:"required,max=100"`
	Title           string       `db:"title" json:"title" validate:"required,max=200"`
	ClientID        *int         `db:"client_id" json:"clientId"`
	CompanyID       *int         `db:"company_id" json:"companyId"`
	Department      string       `db:"department" json:"department"`
	PublishDate     *time.Time   `db:"publish_date" json:"publishDate"`
	DueDate         *time.Time   `db:"due_date" json:"dueDate"`
	Status          TenderStatus `db:"status" json:"status" validate:"omitempty,oneof=open pending closed awarded"`
	EstimatedValue  string       `db:"estimated_value" json:"estimatedValue"`
	Description     string       `db:"description" json:"description" validate:"max=2000"`
	CreatedBy       *int         `db:"created_by" json:"createdBy"`
	CreatedAt       time.Time    `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time    `db:"updated_at" json:"updatedAt"`
}

// Сущность Документа (всегда принадлежит тендеру)
type Document struct {
	ID         int       `db:"id" json:"id"`
	TenderID   int       `db:"tender_id" json:"tenderId" validate:"required"`
	Filename   string    `db:"filename" json:"filename" validate:"required,max=255"`
	FileSize   int64     `db:"file_size" json:"fileSize"`
	FileType   string    `db:"file_type" json:"fileType"`
	FilePath   string    `db:"file_path" json:"filePath"`
	UploadedBy *int      `db:"uploaded_by" json:"uploadedBy"`
	UploadedAt time.Time `db:"uploaded_at" json:"uploadedAt"`
}

// Сущность записи журнала активности (только вставка, никогда не меняется)
type Activity struct {
	ID           int          `db:"id" json:"id"`
	TenderID     *int         `db:"tender_id" json:"tenderId"`
	ActivityType ActivityType `db:"activity_type" json:"activityType"`
	Description  string       `db:"description" json:"description"`
	UserID       int          `db:"user_id" json:"userId"`
	CreatedAt    time.Time    `db:"created_at" json:"createdAt"`
}

// Запись ленты активности — Activity плюс имя пользователя из join
type ActivityFeedItem struct {
	Activity
	UserName string `db:"user_name" json:"userName"`
}

// Сущность Лида (предтендерная возможность)
type Lead struct {
	ID            int        `db:"id" json:"id"`
	Title         string     `db:"title" json:"title" validate:"required,max=200"`
	CompanyID     int        `db:"company_id" json:"companyId" validate:"required"`
	ContactPerson string     `db:"contact_person" json:"contactPerson"`
	Source        string     `db:"source" json:"source"`
	EMDValue      string     `db:"emd_value" json:"emdValue"`
	Status        LeadStatus `db:"status" json:"status" validate:"omitempty,oneof=New Qualified Bidding Won Lost"`
	AssignedTo    *int       `db:"assigned_to" json:"assignedTo"`
	TenderRef     *string    `db:"tender_ref" json:"tenderId"`
	BidStartDate  *time.Time `db:"bid_start_date" json:"bidStartDate"`
	BidEndDate    *time.Time `db:"bid_end_date" json:"bidEndDate"`
	Notes         string     `db:"notes" json:"notes"`
	CreatedAt     time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updatedAt"`
}

// Счётчики для дашборда
type DashboardStats struct {
	TotalTenders   int `db:"total_tenders" json:"totalTenders"`
	OpenTenders    int `db:"open_tenders" json:"openTenders"`
	TotalLeads     int `db:"total_leads" json:"totalLeads"`
	TotalCustomers int `db:"total_customers" json:"totalCustomers"`
	TotalCompanies int `db:"total_companies" json:"totalCompanies"`
	TotalClients   int `db:"total_clients" json:"totalClients"`
}
