// Command portal runs a short scripted session against the in-memory
// community portal: an admin signs in, reads the dashboard, browses and
// filters the alumni directory, interacts with the feed, exchanges messages
// with the auto-reply simulator and sends a newsletter.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"alumni-portal/internal/app"
	"alumni-portal/internal/config"
	"alumni-portal/internal/domain/user"
	"alumni-portal/internal/fixture"
	"alumni-portal/internal/usecase/analytics"
	"alumni-portal/internal/usecase/newsletter"
	"alumni-portal/internal/usecase/records"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	c, cleanup, err := app.Bootstrap(cfg)
	if err != nil {
		log.Fatalf("failed to init container: %v", err)
	}
	defer func() {
		_ = cleanup()
	}()

	if err := run(context.Background(), c); err != nil {
		log.Printf("session failed: %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, c *app.Container) error {
	sess, err := c.Auth.Login(ctx, fixture.AdminEmail, "admin123")
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	fmt.Printf("Signed in as %s (%s), landing on %q\n\n", sess.Account.Identity().FullName(), sess.Account.Role, sess.Page)

	sum := c.Dashboard()
	fmt.Printf("Dashboard: %d alumni, %d active, %d MSc, %d PhD, avg salary %.0f\n",
		sum.TotalAlumni, sum.ActiveAlumni, sum.MScGraduates, sum.PhDGraduates, sum.Salary.Average)
	fmt.Printf("Recent graduates (since %d): %d\n\n", analytics.RecentGraduateYear, sum.RecentGraduates)

	phd := c.Records.List(records.Filter{Degree: user.DegreePhD}, records.SortBySalary, records.SortDesc)
	fmt.Println("PhD alumni by salary:")
	for _, a := range phd {
		fmt.Printf("  %-16s %s at %s, salary %s\n", a.FullName(), a.CurrentPosition, a.Company, a.Salary)
	}
	fmt.Println()

	posts := c.Feed.Posts()
	if len(posts) > 0 {
		top := posts[0]
		if err := c.Feed.Like(top.ID, sess.Account.Identity().ID); err != nil {
			return fmt.Errorf("like: %w", err)
		}
		if _, err := c.Feed.Comment(top.ID, sess.Account.Identity().ID, "Great to see this!"); err != nil {
			return fmt.Errorf("comment: %w", err)
		}
		refreshed := c.Feed.Posts()[0]
		fmt.Printf("Latest post now has %d likes and %d comments\n\n", len(refreshed.Likes), len(refreshed.Comments))
	}

	adminID := sess.Account.Identity().ID
	fmt.Printf("Unread conversations: %d\n", c.Chat.UnreadCount(adminID))

	conv, err := c.Chat.Start(adminID, 1)
	if err != nil {
		return fmt.Errorf("start conversation: %w", err)
	}
	c.Chat.SetActive(conv.ID)
	if _, err := c.Chat.Send(conv.ID, adminID, "Hi Adaora, how is the mentoring program going?"); err != nil {
		return fmt.Errorf("send: %w", err)
	}
	fmt.Printf("Message sent to %s, waiting for a reply...\n", c.Directory.DisplayName(1))

	waitForReply(c, conv.ID, adminID)
	fmt.Println()

	audience := newsletter.Audience{Degree: user.DegreeMSc}
	n, err := c.Newsletter.Send(ctx, newsletter.Draft{
		Subject: "Department Update",
		Body:    "Hello {{firstName}},\n\nHighlights this term:\n- New research lab opened\n- Mentoring program doubled in size\n\nBest,\nThe CS Department",
	}, audience)
	if err != nil {
		return fmt.Errorf("newsletter: %w", err)
	}
	fmt.Printf("Newsletter delivered to %d MSc alumni\n\n", n)

	for _, note := range c.Notify.Recent(3) {
		fmt.Printf("[%s] %s\n", note.Kind, note.Text)
	}

	c.Auth.Logout()
	fmt.Println("\nSigned out.")
	return nil
}

// waitForReply polls until the simulator answers or the reply window plus a
// margin elapses.
func waitForReply(c *app.Container, conversationID, selfID int64) {
	deadline := time.Now().Add(c.Config.Sim.ReplyWindowMax + 2*time.Second)
	for time.Now().Before(deadline) {
		if info, ok := c.Chat.Typing(); ok {
			fmt.Printf("%s is typing...\n", info.ParticipantName)
		}
		if conv, ok := c.Chat.Active(); ok {
			if last, ok := conv.LastMessage(); ok && last.AuthorID != selfID {
				fmt.Printf("Reply: %q\n", last.Content)
				return
			}
		}
		time.Sleep(200 * time.Millisecond)
	}
	fmt.Println("No reply arrived in time.")
}
