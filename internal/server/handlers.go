package server

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"wfmu-archive/internal/webhook"
)

// handleDirectoryDump renders the live table one entry per line, keys
// sorted for a stable page.
func (s *Server) handleDirectoryDump(c *fiber.Ctx) error {
	table := s.store.Current()

	keys := make([]string, 0, len(table))
	for key := range table {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, key := range keys {
		record := table[key]
		fmt.Fprintf(&sb, "Name: %s, Title: %s, Date: %s, MP3 Link: %s<br/>",
			key, record.AnnouncedTitle, record.Date, record.MediaURL)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTML)
	return c.SendString(sb.String())
}

// handleWebhook dispatches a voice platform request to one of the three
// known handlers. A body that does not parse, or a handler name outside the
// known three, is a client error: fail fast instead of returning an empty
// envelope.
func (s *Server) handleWebhook(c *fiber.Ctx) error {
	req := new(webhook.Request)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "cannot parse JSON payload",
		})
	}

	switch req.Handler.Name {
	case webhook.HandlerGetArchiveList:
		return c.JSON(s.archiveList(req))
	case webhook.HandlerValidateArchive:
		return c.JSON(s.validateArchive(req))
	case webhook.HandlerPlayArchive:
		return c.JSON(s.playArchive(req))
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("unrecognized handler: %q", req.Handler.Name),
		})
	}
}

// archiveList feeds the platform every current lookup key as a session type
// override, so the archive slot can match what the directory actually holds.
func (s *Server) archiveList(req *webhook.Request) webhook.Response {
	table := s.store.Current()

	keys := make([]string, 0, len(table))
	for key := range table {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	entries := make([]webhook.TypeEntry, len(keys))
	for i, key := range keys {
		entries[i] = webhook.TypeEntry{Name: key, Synonyms: []string{key}}
	}

	return webhook.Response{
		Session: webhook.Session{
			ID: req.Session.ID,
			TypeOverrides: []webhook.TypeOverride{{
				Name:    "archive",
				Mode:    "TYPE_REPLACE",
				Synonym: webhook.SynonymType{Entries: entries},
			}},
		},
	}
}

// validateArchive echoes the request scene back with slot filling marked
// final.
func (s *Server) validateArchive(req *webhook.Request) webhook.Response {
	scene := &webhook.Scene{}
	if req.Scene != nil {
		copied := *req.Scene
		scene = &copied
	}
	scene.SlotFillingStatus = "FINAL"

	return webhook.Response{
		Session: webhook.Session{ID: req.Session.ID},
		Scene:   scene,
	}
}

// playArchive resolves the requested name against the live table and, on a
// hit, responds with a media playback prompt. An unresolvable or empty name
// yields a response with no prompt at all; that is a normal outcome, not an
// error.
func (s *Server) playArchive(req *webhook.Request) webhook.Response {
	resp := webhook.Response{
		Session: webhook.Session{ID: req.Session.ID},
	}

	name := req.ArchiveName()
	if name == "" {
		return resp
	}

	record, ok := s.store.Current().Resolve(name, time.Now(), s.config.MaxArchiveAge())
	if !ok {
		return resp
	}

	speech := "OK, playing " + record.AnnouncedTitle
	if record.Date != "" {
		speech += " from " + record.Date
	}

	resp.Prompt = &webhook.Prompt{
		FirstSimple: &webhook.Simple{Speech: speech},
		Content: &webhook.Content{
			Media: &webhook.Media{
				MediaType: "AUDIO",
				MediaObjects: []webhook.MediaObject{{
					Name:        record.AnnouncedTitle,
					Description: record.Description,
					URL:         record.MediaURL,
					Image: &webhook.MediaImage{
						Large: &webhook.Image{
							URL: s.config.LogoURL,
							Alt: strings.ToUpper(s.config.StationName),
						},
					},
				}},
			},
		},
	}
	return resp
}
