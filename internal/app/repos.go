package app

import (
	"gorm.io/gorm"

	"github.com/BennetC/Social-Tracker/internal/data/repos"
	"github.com/BennetC/Social-Tracker/internal/pkg/logger"
)

type Repos struct {
	Relationship   repos.RelationshipRepo
	SocialMedia    repos.SocialMediaRepo
	CTypeAssoc     repos.ConnectionTypeAssocRepo
	TagAssoc       repos.TagAssocRepo
	Platform       repos.PlatformRepo
	ConnectionType repos.ConnectionTypeRepo
	Tag            repos.TagRepo
	Interaction    repos.InteractionRepo
	FollowUp       repos.FollowUpRepo
	Event          repos.EventRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Relationship:   repos.NewRelationshipRepo(db, log),
		SocialMedia:    repos.NewSocialMediaRepo(db, log),
		CTypeAssoc:     repos.NewConnectionTypeAssocRepo(db, log),
		TagAssoc:       repos.NewTagAssocRepo(db, log),
		Platform:       repos.NewPlatformRepo(db, log),
		ConnectionType: repos.NewConnectionTypeRepo(db, log),
		Tag:            repos.NewTagRepo(db, log),
		Interaction:    repos.NewInteractionRepo(db, log),
		FollowUp:       repos.NewFollowUpRepo(db, log),
		Event:          repos.NewEventRepo(db, log),
	}
}
