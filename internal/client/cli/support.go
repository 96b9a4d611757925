package cli

import (
	"context"
	"fmt"
	"os"
)

// Support prints the latest page of the community support feed, pinned
// messages first as the backend orders them.
func (a *App) Support(ctx context.Context) error {
	page, err := a.supportService.Messages(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}

	if len(page.Results) == 0 {
		fmt.Println("No messages yet")
		return nil
	}
	for _, m := range page.Results {
		pin := ""
		if m.IsPinned {
			pin = "[pinned] "
		}
		fmt.Printf("%s%s (%s): %s\n", pin, m.Username, m.CreatedAt, m.Content)
	}
	if page.Next != "" {
		fmt.Printf("Showing %d of %d messages\n", len(page.Results), page.Count)
	}
	return nil
}

// Post reads a message and posts it to the support feed.
func (a *App) Post(ctx context.Context) error {
	content, err := getSimpleText(a.reader, "Enter your message", os.Stdout)
	if err != nil {
		return err
	}

	if _, err := a.supportService.Post(ctx, content); err != nil {
		fmt.Println("Error:", err)
		return err
	}

	fmt.Println("Message posted")
	return nil
}

// Upload reads a local file path, uploads the file through a presigned URL,
// and prints the storage key to attach it by.
func (a *App) Upload(ctx context.Context) error {
	path, err := getSimpleText(a.reader, "Enter path of the file to upload", os.Stdout)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}

	key, err := a.supportService.Upload(ctx, path, data)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}

	fmt.Println("Uploaded as", key)
	return nil
}
