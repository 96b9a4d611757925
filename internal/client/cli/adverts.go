package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/its-steo/GrandV-sub001/internal/client/models"
)

// Adverts lists today's adverts and whether each can still be submitted.
func (a *App) Adverts(ctx context.Context) error {
	resp, err := a.advertService.List(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}

	if resp.UserPackage == nil {
		fmt.Println("No active package; buy a package to start earning from adverts")
	}
	if len(resp.Adverts) == 0 {
		fmt.Println("No adverts today")
		return nil
	}
	for _, ad := range resp.Adverts {
		status := "available"
		if ad.HasSubmitted {
			status = "submitted"
		} else if !ad.CanSubmit {
			status = "locked"
		}
		fmt.Printf("#%d  %-30s rate %d  [%s]\n", ad.ID, ad.Title, ad.RateCategory, status)
	}
	return nil
}

// Download fetches an advert's file into the local downloads directory.
func (a *App) Download(ctx context.Context) error {
	resp, err := a.advertService.List(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}

	id, err := GetID(a.reader, "Enter advert id to download", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}

	for _, ad := range resp.Adverts {
		if ad.ID == id {
			path, err := a.advertService.Download(ctx, ad)
			if err != nil {
				fmt.Println("Error:", err)
				return err
			}
			fmt.Println("Saved to", path)
			return nil
		}
	}

	fmt.Printf("Advert %d not found in today's list\n", id)
	return nil
}

// Submit claims views for a shared advert, attaching a local screenshot file
// as proof.
func (a *App) Submit(ctx context.Context) error {
	id, err := GetID(a.reader, "Enter advert id", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}
	views, err := GetID(a.reader, "Enter views count", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}
	path, err := getSimpleText(a.reader, "Enter screenshot file path", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}

	sub, err := a.advertService.Submit(ctx, models.SubmitAdvertRequest{
		AdvertID:       id,
		ViewsCount:     int(views),
		ScreenshotName: filepath.Base(path),
		Screenshot:     data,
	})
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}
	fmt.Printf("Submission #%d recorded: %d views [%s]\n", sub.ID, sub.ViewsCount, sub.Status)
	return nil
}

// Submissions prints the advert-view submission history and total earnings.
func (a *App) Submissions(ctx context.Context) error {
	resp, err := a.advertService.Submissions(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}

	if len(resp.Submissions) == 0 {
		fmt.Println("No submissions yet")
		return nil
	}
	for _, s := range resp.Submissions {
		fmt.Printf("#%d  advert %d  %d views  earned %s  [%s]\n",
			s.ID, s.AdvertID, s.ViewsCount, s.Earnings, s.Status)
	}
	fmt.Printf("Total earnings: %.2f\n", resp.TotalEarnings)
	return nil
}
