package repos

import (
	"gorm.io/gorm"

	"github.com/BennetC/Social-Tracker/internal/data/repos/catalog"
	"github.com/BennetC/Social-Tracker/internal/data/repos/engagement"
	"github.com/BennetC/Social-Tracker/internal/data/repos/events"
	"github.com/BennetC/Social-Tracker/internal/data/repos/relationships"
	"github.com/BennetC/Social-Tracker/internal/pkg/logger"
)

type RelationshipRepo = relationships.RelationshipRepo
type SocialMediaRepo = relationships.SocialMediaRepo
type ConnectionTypeAssocRepo = relationships.ConnectionTypeAssocRepo
type TagAssocRepo = relationships.TagAssocRepo
type SearchFilter = relationships.SearchFilter

type PlatformRepo = catalog.PlatformRepo
type ConnectionTypeRepo = catalog.ConnectionTypeRepo
type TagRepo = catalog.TagRepo

type InteractionRepo = engagement.InteractionRepo
type FollowUpRepo = engagement.FollowUpRepo

type EventRepo = events.EventRepo

func NewRelationshipRepo(db *gorm.DB, baseLog *logger.Logger) RelationshipRepo {
	return relationships.NewRelationshipRepo(db, baseLog)
}

func NewSocialMediaRepo(db *gorm.DB, baseLog *logger.Logger) SocialMediaRepo {
	return relationships.NewSocialMediaRepo(db, baseLog)
}

func NewConnectionTypeAssocRepo(db *gorm.DB, baseLog *logger.Logger) ConnectionTypeAssocRepo {
	return relationships.NewConnectionTypeAssocRepo(db, baseLog)
}

func NewTagAssocRepo(db *gorm.DB, baseLog *logger.Logger) TagAssocRepo {
	return relationships.NewTagAssocRepo(db, baseLog)
}

func NewPlatformRepo(db *gorm.DB, baseLog *logger.Logger) PlatformRepo {
	return catalog.NewPlatformRepo(db, baseLog)
}

func NewConnectionTypeRepo(db *gorm.DB, baseLog *logger.Logger) ConnectionTypeRepo {
	return catalog.NewConnectionTypeRepo(db, baseLog)
}

func NewTagRepo(db *gorm.DB, baseLog *logger.Logger) TagRepo {
	return catalog.NewTagRepo(db, baseLog)
}

func NewInteractionRepo(db *gorm.DB, baseLog *logger.Logger) InteractionRepo {
	return engagement.NewInteractionRepo(db, baseLog)
}

func NewFollowUpRepo(db *gorm.DB, baseLog *logger.Logger) FollowUpRepo {
	return engagement.NewFollowUpRepo(db, baseLog)
}

func NewEventRepo(db *gorm.DB, baseLog *logger.Logger) EventRepo {
	return events.NewEventRepo(db, baseLog)
}
