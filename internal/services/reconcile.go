package services

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BennetC/Social-Tracker/internal/data/repos"
	types "github.com/BennetC/Social-Tracker/internal/domain"
	"github.com/BennetC/Social-Tracker/internal/pkg/errorsx"
	"github.com/BennetC/Social-Tracker/internal/pkg/logger"
	"github.com/BennetC/Social-Tracker/internal/scoring"
)

// OtherPlatform is the sentinel platform name that pulls a custom platform
// definition from the supplementary form lists.
const OtherPlatform = "Other"

// SocialMediaInput carries the parallel form lists for a relationship's
// social accounts. Slots line up by index across Platforms/Handles/Links
// only loosely: handles and links are consumed by independent cursors that
// advance only for platforms whose rules require them.
type SocialMediaInput struct {
	Platforms    []string
	Handles      []string
	Links        []string
	PrimarySlots []string // 1-based slot indices flagged primary
	CustomNames  []string
	CustomRules  []string // both | handle_only | link_only
}

// associationReconciler replaces a relationship's association sets wholesale:
// delete all prior rows, insert the submitted set. Association row identity
// is intentionally not preserved across edits.
type associationReconciler struct {
	log          *logger.Logger
	cfg          scoring.Config
	ctypeRepo    repos.ConnectionTypeRepo
	ctypeAssocs  repos.ConnectionTypeAssocRepo
	tagRepo      repos.TagRepo
	tagAssocs    repos.TagAssocRepo
	platformRepo repos.PlatformRepo
	socialRepo   repos.SocialMediaRepo
}

func newAssociationReconciler(
	log *logger.Logger,
	cfg scoring.Config,
	ctypeRepo repos.ConnectionTypeRepo,
	ctypeAssocs repos.ConnectionTypeAssocRepo,
	tagRepo repos.TagRepo,
	tagAssocs repos.TagAssocRepo,
	platformRepo repos.PlatformRepo,
	socialRepo repos.SocialMediaRepo,
) *associationReconciler {
	return &associationReconciler{
		log:          log.With("component", "associationReconciler"),
		cfg:          cfg,
		ctypeRepo:    ctypeRepo,
		ctypeAssocs:  ctypeAssocs,
		tagRepo:      tagRepo,
		tagAssocs:    tagAssocs,
		platformRepo: platformRepo,
		socialRepo:   socialRepo,
	}
}

// reconcileConnectionTypes replaces the connection-type set. A single
// selection is always stored primary regardless of the explicit field.
func (r *associationReconciler) reconcileConnectionTypes(ctx context.Context, tx *gorm.DB, relationshipID uuid.UUID, selectedIDs []string, primaryID string) error {
	if len(selectedIDs) == 0 {
		return errorsx.Validation("You must select at least one Connection Type.")
	}
	if len(selectedIDs) == 1 {
		primaryID = selectedIDs[0]
	}

	if err := r.ctypeAssocs.FullDeleteByRelationshipIDs(ctx, tx, []uuid.UUID{relationshipID}); err != nil {
		return err
	}

	rows := make([]*types.RelationshipConnectionType, 0, len(selectedIDs))
	for _, raw := range selectedIDs {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return errorsx.Validation("Invalid connection type selection.")
		}
		rows = append(rows, &types.RelationshipConnectionType{
			RelationshipID:   relationshipID,
			ConnectionTypeID: uint(id),
			IsPrimary:        raw == primaryID,
		})
	}
	_, err := r.ctypeAssocs.Create(ctx, tx, rows)
	return err
}

// reconcileTags replaces the tag set from a comma-separated list plus an
// optional primary name. Names are trimmed, lowercased and deduplicated; the
// primary name joins the set even when absent from the list, and a sole tag
// becomes primary when no explicit primary was given.
func (r *associationReconciler) reconcileTags(ctx context.Context, tx *gorm.DB, relationshipID uuid.UUID, tagList, primaryName string) error {
	primary := strings.ToLower(strings.TrimSpace(primaryName))

	names := map[string]struct{}{}
	for _, raw := range strings.Split(tagList, ",") {
		name := strings.ToLower(strings.TrimSpace(raw))
		if name != "" {
			names[name] = struct{}{}
		}
	}
	if primary != "" {
		names[primary] = struct{}{}
	}
	if len(names) == 1 && primary == "" {
		for name := range names {
			primary = name
		}
	}

	if err := r.tagAssocs.FullDeleteByRelationshipIDs(ctx, tx, []uuid.UUID{relationshipID}); err != nil {
		return err
	}

	sorted := make([]string, 0, len(names))
	for name := range names {
		sorted = append(sorted, name)
	}
	sort.Strings(sorted)

	for _, name := range sorted {
		tag, err := r.tagRepo.GetByName(ctx, tx, name)
		if err != nil {
			return err
		}
		if tag == nil {
			tag, err = r.tagRepo.Create(ctx, tx, &types.Tag{Name: name})
			if err != nil {
				return err
			}
		}
		if _, err := r.tagAssocs.Create(ctx, tx, []*types.RelationshipTag{{
			RelationshipID: relationshipID,
			TagID:          tag.ID,
			IsPrimary:      tag.Name == primary,
		}}); err != nil {
			return err
		}
	}
	return nil
}

// reconcileSocialMedia replaces the social-media set from the parallel form
// lists. Malformed input (exhausted custom lists, unknown platforms, empty
// slots) skips the slot silently rather than failing the submission.
func (r *associationReconciler) reconcileSocialMedia(ctx context.Context, tx *gorm.DB, relationshipID uuid.UUID, in SocialMediaInput) error {
	if err := r.socialRepo.FullDeleteByRelationshipIDs(ctx, tx, []uuid.UUID{relationshipID}); err != nil {
		return err
	}

	handleIdx, linkIdx := 0, 0
	nameIdx, ruleIdx := 0, 0
	var rows []*types.SocialMedia

	for i, platformName := range in.Platforms {
		if platformName == "" {
			continue
		}
		platform, err := r.platformRepo.GetByName(ctx, tx, platformName)
		if err != nil {
			return err
		}

		if platformName == OtherPlatform {
			if nameIdx >= len(in.CustomNames) {
				continue
			}
			customName := in.CustomNames[nameIdx]
			nameIdx++
			if customName != "" {
				platform, err = r.platformRepo.GetByName(ctx, tx, customName)
				if err != nil {
					return err
				}
				if platform == nil {
					if ruleIdx >= len(in.CustomRules) {
						continue
					}
					rule := in.CustomRules[ruleIdx]
					ruleIdx++
					platform, err = r.platformRepo.Create(ctx, tx, &types.Platform{
						Name:           customName,
						RequiresHandle: rule == "both" || rule == "handle_only",
						RequiresLink:   rule == "both" || rule == "link_only",
					})
					if err != nil {
						return err
					}
				}
			}
		}

		if platform == nil {
			continue
		}

		var handle, link string
		if platform.RequiresHandle && handleIdx < len(in.Handles) {
			handle = in.Handles[handleIdx]
			handleIdx++
		}
		if platform.RequiresLink && linkIdx < len(in.Links) {
			link = in.Links[linkIdx]
			linkIdx++
		}
		if link == "" && handle != "" {
			link = r.synthesizeLink(platform.Name, handle)
		}

		rows = append(rows, &types.SocialMedia{
			RelationshipID: relationshipID,
			PlatformID:     platform.ID,
			Handle:         optional(handle),
			ProfileLink:    optional(link),
			IsPrimary:      slotFlagged(in.PrimarySlots, i+1),
		})
	}

	_, err := r.socialRepo.Create(ctx, tx, rows)
	return err
}

// synthesizeLink builds a profile link from the platform's base URL. Email
// handles are appended verbatim; every other platform drops a leading "@".
func (r *associationReconciler) synthesizeLink(platformName, handle string) string {
	baseURL, ok := r.cfg.PlatformBaseURLs[platformName]
	if !ok {
		return ""
	}
	if platformName == "Email" {
		return baseURL + handle
	}
	return baseURL + strings.TrimLeft(handle, "@")
}

func slotFlagged(primarySlots []string, slot int) bool {
	want := strconv.Itoa(slot)
	for _, s := range primarySlots {
		if s == want {
			return true
		}
	}
	return false
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
