package repositories

import (
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is the shared sentinel for missing rows. Entity repositories
// alias it so callers can match either form with errors.Is.
var ErrNotFound = errors.New("record not found")

// Repositories bundles every repository over a single pgx pool.
type Repositories struct {
	UserRepository        *UserRepository
	TokenRepository       *TokenRepository
	ProjectRepository     *ProjectRepository
	EventRepository       *EventRepository
	ProgramRepository     *ProgramRepository
	RecruitmentRepository *RecruitmentRepository
	ArticleRepository     *ArticleRepository
	CommunityRepository   *CommunityRepository
	ReporterRepository    *ReporterRepository
	PartnerRepository     *PartnerRepository
	HistoryRepository     *HistoryRepository
	SocialRepository      *SocialAccountRepository
	InquiryRepository     *InquiryRepository
	ApplicationRepository *ApplicationRepository
	PageImageRepository   *PageImageRepository
	SettingRepository     *SettingRepository
}

// NewRepositories creates all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:        NewUserRepository(db),
		TokenRepository:       NewTokenRepository(db),
		ProjectRepository:     NewProjectRepository(db),
		EventRepository:       NewEventRepository(db),
		ProgramRepository:     NewProgramRepository(db),
		RecruitmentRepository: NewRecruitmentRepository(db),
		ArticleRepository:     NewArticleRepository(db),
		CommunityRepository:   NewCommunityRepository(db),
		ReporterRepository:    NewReporterRepository(db),
		PartnerRepository:     NewPartnerRepository(db),
		HistoryRepository:     NewHistoryRepository(db),
		SocialRepository:      NewSocialAccountRepository(db),
		InquiryRepository:     NewInquiryRepository(db),
		ApplicationRepository: NewApplicationRepository(db),
		PageImageRepository:   NewPageImageRepository(db),
		SettingRepository:     NewSettingRepository(db),
	}
}

// newStatementBuilder returns a squirrel builder with Postgres placeholders.
func newStatementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
