// Command devtoken issues a session token for local testing of the API.
// Sessions are normally issued by the identity provider in front of this
// service; the token uses the same secret and issuer the server validates.
//
// With --create-family it first creates a family owned by the user, so a
// fresh database can be exercised end to end, including the WhatsApp
// webhook when --phone is given.
//
// Flags:
//
//	--user           user id for the token subject (default: a new id, only with --create-family)
//	--ttl            token lifetime (default: auth.dev_token_ttl)
//	--create-family  name of a family to create with the user as owner
//	--phone          owner phone used to attribute inbound messages
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/familypa-backend/internal/adapter/postgres"
	familyrepo "github.com/heartmarshall/familypa-backend/internal/adapter/postgres/family"
	"github.com/heartmarshall/familypa-backend/internal/app"
	"github.com/heartmarshall/familypa-backend/internal/auth"
	"github.com/heartmarshall/familypa-backend/internal/config"
	"github.com/heartmarshall/familypa-backend/internal/domain"
)

func main() {
	userFlag := flag.String("user", "", "user id for the token subject")
	ttlFlag := flag.Duration("ttl", 0, "token lifetime")
	familyFlag := flag.String("create-family", "", "create a family owned by the user")
	phoneFlag := flag.String("phone", "", "owner phone for inbound message attribution")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	userID, err := resolveUser(*userFlag, *familyFlag != "")
	if err != nil {
		logger.Error("invalid --user", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if *familyFlag != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		fam, err := createFamily(ctx, cfg.Database, *familyFlag, userID, *phoneFlag)
		cancel()
		if err != nil {
			logger.Error("create family", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("family created",
			slog.String("family_id", fam.ID.String()),
			slog.String("user_id", userID.String()),
		)
	}

	ttl := cfg.Auth.DevTokenTTL
	if *ttlFlag > 0 {
		ttl = *ttlFlag
	}

	token, err := auth.NewSessionManager(cfg.Auth.SessionSecret, cfg.Auth.Issuer).Issue(userID, ttl)
	if err != nil {
		logger.Error("issue token", slog.String("error", err.Error()))
		os.Exit(1)
	}

	fmt.Println(token)
}

func resolveUser(raw string, mayGenerate bool) (uuid.UUID, error) {
	if raw == "" && mayGenerate {
		return uuid.New(), nil
	}
	return uuid.Parse(raw)
}

func createFamily(ctx context.Context, dbCfg config.DatabaseConfig, name string, owner uuid.UUID, phone string) (domain.Family, error) {
	pool, err := postgres.NewPool(ctx, dbCfg)
	if err != nil {
		return domain.Family{}, err
	}
	defer pool.Close()

	repo := familyrepo.New(pool)
	member := domain.FamilyMember{UserID: owner, Role: domain.FamilyRoleOwner}
	if phone != "" {
		member.Phone = &phone
	}

	var fam domain.Family
	err = postgres.NewTxManager(pool).RunInTx(ctx, func(ctx context.Context) error {
		var err error
		if fam, err = repo.CreateFamily(ctx, name); err != nil {
			return err
		}
		member.FamilyID = fam.ID
		_, err = repo.AddMember(ctx, member)
		return err
	})
	return fam, err
}
