package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/dmitrijs2005/founderhub/internal/client/api"
)

func (a *App) cmdMe(ctx context.Context, _ []string) error {
	f, err := a.api.GetMyProfile(ctx)
	if err != nil {
		if api.StatusCode(err) == http.StatusNotFound {
			a.println("You have no profile yet, type 'profile' to create one")
			return nil
		}
		return err
	}
	renderFounder(a.out, f)
	return nil
}

func (a *App) cmdFounders(ctx context.Context, args []string) error {
	var filter api.FounderFilter
	for _, arg := range args {
		k, v, ok := strings.Cut(arg, "=")
		if !ok || v == "" {
			return errUsage
		}
		switch k {
		case "stage":
			filter.Stage = v
		case "industry":
			filter.Industry = v
		case "looking_for", "looking-for":
			filter.LookingFor = v
		default:
			return errUsage
		}
	}

	founders, err := a.api.GetFounders(ctx, filter)
	if err != nil {
		return err
	}
	renderFounders(a.out, founders)
	return nil
}

func (a *App) cmdFounder(ctx context.Context, args []string) error {
	id, err := idArg(args, 0)
	if err != nil {
		return err
	}
	f, err := a.api.GetFounder(ctx, id)
	if err != nil {
		return err
	}
	renderFounder(a.out, f)
	return nil
}

func (a *App) cmdSearch(ctx context.Context, args []string) error {
	q := textArg(args, 0)
	if q == "" {
		return errUsage
	}
	founders, err := a.api.SearchFounders(ctx, q)
	if err != nil {
		return err
	}
	renderFounders(a.out, founders)
	return nil
}

func (a *App) cmdRoulette(ctx context.Context, _ []string) error {
	m, err := a.api.MatchRandomFounder(ctx)
	if err != nil {
		if api.StatusCode(err) == http.StatusNotFound {
			a.println("Nobody is online right now, try again later")
			return nil
		}
		return err
	}
	a.printf("Matched with %s (session %s)\n", m.MatchedFounder.Name, m.SessionID)
	renderFounder(a.out, &m.MatchedFounder)
	return nil
}

// cmdProfile reads name=value lines and creates the profile, or patches it
// when one exists.
func (a *App) cmdProfile(ctx context.Context, _ []string) error {
	lines, err := ReadFields(a.reader, "Profile fields as name=value, lists comma separated\n"+
		"(name, country, timezone, stage, industry, skills, looking_for, personality, current_goal, bio)", a.out)
	if err != nil {
		return err
	}
	update, err := parseProfile(lines)
	if err != nil {
		return err
	}

	_, err = a.api.GetMyProfile(ctx)
	switch {
	case api.StatusCode(err) == http.StatusNotFound:
		f, err := a.api.CreateProfile(ctx, founderFromUpdate(update))
		if err != nil {
			return err
		}
		a.println("Profile created")
		renderFounder(a.out, f)
		return nil
	case err != nil:
		return err
	}

	f, err := a.api.UpdateProfile(ctx, update)
	if err != nil {
		return err
	}
	a.println("Profile updated")
	renderFounder(a.out, f)
	return nil
}

func (a *App) cmdUpload(ctx context.Context, args []string) error {
	path := textArg(args, 0)
	if path == "" {
		return errUsage
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read image: %w", err)
	}
	f, err := a.api.UploadImage(ctx, path, data)
	if err != nil {
		return err
	}
	a.printf("Profile image updated: %s\n", f.ProfileImage)
	return nil
}

func parseProfile(lines []string) (api.ProfileUpdate, error) {
	var u api.ProfileUpdate
	for _, line := range lines {
		k, v, ok := strings.Cut(line, "=")
		if !ok {
			return u, fmt.Errorf("expected name=value, got %q", line)
		}
		k, v = strings.TrimSpace(k), strings.TrimSpace(v)
		switch k {
		case "name":
			u.Name = &v
		case "country":
			u.Country = &v
		case "timezone":
			u.Timezone = &v
		case "stage":
			u.Stage = &v
		case "industry":
			u.Industry = &v
		case "skills":
			u.Skills = splitList(v)
		case "looking_for":
			u.LookingFor = &v
		case "personality":
			u.Personality = splitList(v)
		case "current_goal":
			u.CurrentGoal = &v
		case "bio":
			u.Bio = &v
		default:
			return u, fmt.Errorf("unknown profile field %q", k)
		}
	}
	return u, nil
}

func splitList(v string) []string {
	out := make([]string, 0)
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func founderFromUpdate(u api.ProfileUpdate) api.Founder {
	deref := func(p *string) string {
		if p == nil {
			return ""
		}
		return *p
	}
	return api.Founder{
		Name:        deref(u.Name),
		Country:     deref(u.Country),
		Timezone:    deref(u.Timezone),
		Stage:       deref(u.Stage),
		Industry:    deref(u.Industry),
		Skills:      u.Skills,
		LookingFor:  deref(u.LookingFor),
		Personality: u.Personality,
		CurrentGoal: deref(u.CurrentGoal),
		Bio:         deref(u.Bio),
	}
}
