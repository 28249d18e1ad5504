package models

// RoleType defines the user role type
type RoleType string

const (
	RoleUser     RoleType = "USER"
	RoleResident RoleType = "RESIDENT"
	RoleAdmin    RoleType = "ADMIN"
)

// EventStatus is the lifecycle state of an event as shown on the public site.
type EventStatus string

const (
	EventUpcoming  EventStatus = "upcoming"
	EventOngoing   EventStatus = "ongoing"
	EventCompleted EventStatus = "completed"
)

// ProgramType categorizes resident programs.
type ProgramType string

const (
	ProgramCulture   ProgramType = "culture"
	ProgramEducation ProgramType = "education"
	ProgramCommunity ProgramType = "community"
	ProgramVolunteer ProgramType = "volunteer"
)

// ProgramStatus is the recruiting state of a resident program.
type ProgramStatus string

const (
	ProgramRecruiting ProgramStatus = "recruiting"
	ProgramInProgress ProgramStatus = "ongoing"
	ProgramClosed     ProgramStatus = "closed"
)

// ArticleCategory partitions insight articles.
type ArticleCategory string

const (
	ArticleColumn  ArticleCategory = "column"
	ArticleMedia   ArticleCategory = "media"
	ArticleLibrary ArticleCategory = "library"
)

// ReporterStatus is the moderation state of a resident reporter article.
type ReporterStatus string

const (
	ReporterPending  ReporterStatus = "pending"
	ReporterApproved ReporterStatus = "approved"
)

// InquiryType categorizes contact-form inquiries.
type InquiryType string

const (
	InquiryMoveIn   InquiryType = "move-in"
	InquiryBusiness InquiryType = "business"
	InquiryRecruit  InquiryType = "recruit"
)

// SocialPlatform identifies the network behind a linked social account.
type SocialPlatform string

const (
	PlatformInstagram SocialPlatform = "instagram"
	PlatformYoutube   SocialPlatform = "youtube"
	PlatformBlog      SocialPlatform = "blog"
	PlatformFacebook  SocialPlatform = "facebook"
)
