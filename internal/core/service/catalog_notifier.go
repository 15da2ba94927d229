package service

import (
	"context"
	"fmt"
	"html"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"cineiut.com/catalog/internal/core/domain"
	"cineiut.com/catalog/internal/core/port"
)

const notificationTimeout = 30 * time.Second

// CatalogNotifier fans catalog changes out to users as best-effort mails.
// Each mail is an independent task; its failure is logged and never returned.
type CatalogNotifier struct {
	subscribers port.SubscriberReader
	mailer      port.MailDispatcher
	wg          sync.WaitGroup
}

func NewCatalogNotifier(subscribers port.SubscriberReader, mailer port.MailDispatcher) *CatalogNotifier {
	return &CatalogNotifier{
		subscribers: subscribers,
		mailer:      mailer,
	}
}

// Announce resolves the movie and its recipients, then dispatches one task per
// recipient and returns the number of dispatched tasks.
func (n *CatalogNotifier) Announce(ctx context.Context, movieID int64, event domain.AnnouncementEvent) (int, error) {
	movie, err := n.subscribers.GetMovie(ctx, movieID)
	if err != nil {
		return 0, err
	}

	var recipients []domain.Subscriber
	switch event {
	case domain.AnnouncementCreated:
		recipients, err = n.subscribers.ListUsers(ctx)
	case domain.AnnouncementUpdated:
		recipients, err = n.subscribers.ListFavoriters(ctx, movieID)
	default:
		return 0, fmt.Errorf("unsupported announcement event %q", event)
	}
	if err != nil {
		return 0, err
	}

	for _, recipient := range recipients {
		n.dispatch(announcementMail(event, recipient, movie.Title))
	}

	log.WithFields(log.Fields{
		"movieId":    movieID,
		"event":      event,
		"recipients": len(recipients),
	}).Info("Catalog announcement dispatched")

	return len(recipients), nil
}

// Wait blocks until every dispatched task finished or ctx is done.
func (n *CatalogNotifier) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		n.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (n *CatalogNotifier) dispatch(mail domain.Mail) {
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()

		// Detached from the request: the caller has already answered.
		ctx, cancel := context.WithTimeout(context.Background(), notificationTimeout)
		defer cancel()

		if err := n.mailer.Send(ctx, mail); err != nil {
			notificationsCounter.WithLabelValues("failed").Inc()
			log.WithError(err).WithField("to", mail.To).Warn("Catalog announcement not delivered")
			return
		}
		notificationsCounter.WithLabelValues("sent").Inc()
	}()
}

func announcementMail(event domain.AnnouncementEvent, to domain.Subscriber, title string) domain.Mail {
	htmlName, htmlTitle := html.EscapeString(to.FirstName), html.EscapeString(title)
	if event == domain.AnnouncementUpdated {
		return domain.Mail{
			To:      to.Mail,
			Subject: fmt.Sprintf("Mise à jour sur votre favori : %s", title),
			Text: fmt.Sprintf("Bonjour %s, les informations concernant votre film favori \"%s\" ont été modifiées.",
				to.FirstName, title),
			HTML: fmt.Sprintf("<h3>Mise à jour d'un favori</h3><p>Bonjour %s,</p><p>Les informations concernant votre film favori <b>%s</b> ont été modifiées par un administrateur.</p>",
				htmlName, htmlTitle),
		}
	}

	return domain.Mail{
		To:      to.Mail,
		Subject: fmt.Sprintf("Nouveauté : %s est disponible !", title),
		Text: fmt.Sprintf("Bonjour %s, le film \"%s\" vient d'être ajouté à notre catalogue. Venez le découvrir !",
			to.FirstName, title),
		HTML: fmt.Sprintf("<h3>Nouveau film ajouté !</h3><p>Bonjour %s,</p><p>Le film <b>%s</b> vient d'être ajouté à notre catalogue.</p><p>Venez le découvrir dès maintenant !</p>",
			htmlName, htmlTitle),
	}
}
