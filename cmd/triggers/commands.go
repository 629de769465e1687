package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	triggers "github.com/triggershq/client-go"
)

var (
	createSource   string
	createType     string
	createPayload  string
	createMetadata []string

	listSource string
	listType   string
	listStatus string
	listCursor string
	listLimit  int
	listAll    bool

	waitSource   string
	waitType     string
	waitTimeout  time.Duration
	pollInterval time.Duration
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Submit a new event",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		params := triggers.CreateEventParams{
			Source:    createSource,
			EventType: createType,
		}

		if createPayload != "" {
			if err := json.Unmarshal([]byte(createPayload), &params.Payload); err != nil {
				return fmt.Errorf("parse --payload: %w", err)
			}
		}

		if len(createMetadata) > 0 {
			params.Metadata = make(map[string]string, len(createMetadata))
			for _, kv := range createMetadata {
				key, value, ok := strings.Cut(kv, "=")
				if !ok {
					return fmt.Errorf("invalid --metadata %q, want key=value", kv)
				}
				params.Metadata[key] = value
			}
		}

		ctx, cancel := commandContext()
		defer cancel()

		event, err := client.CreateEvent(ctx, params)
		if err != nil {
			return err
		}
		return printJSON(event)
	},
}

var getCmd = &cobra.Command{
	Use:   "get <event-id>",
	Short: "Fetch a single event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		ctx, cancel := commandContext()
		defer cancel()

		event, err := client.GetEvent(ctx, args[0])
		if err != nil {
			return err
		}
		return printJSON(event)
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the event inbox",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		var opts []triggers.ListOption
		if listSource != "" {
			opts = append(opts, triggers.WithSource(listSource))
		}
		if listType != "" {
			opts = append(opts, triggers.WithEventType(listType))
		}
		if listStatus != "" {
			opts = append(opts, triggers.WithStatus(triggers.EventStatus(listStatus)))
		}
		if listCursor != "" {
			opts = append(opts, triggers.WithCursor(listCursor))
		}
		if cmd.Flags().Changed("limit") {
			opts = append(opts, triggers.WithLimit(listLimit))
		}

		ctx, cancel := commandContext()
		defer cancel()

		if listAll {
			events, err := client.ListAllEvents(ctx, opts...)
			if err != nil {
				return err
			}
			return printJSON(struct {
				Events []*triggers.Event `json:"events"`
			}{Events: events})
		}

		page, err := client.GetInbox(ctx, opts...)
		if err != nil {
			return err
		}
		return printJSON(page)
	},
}

var ackCmd = &cobra.Command{
	Use:   "ack <event-id>",
	Short: "Acknowledge an event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		ctx, cancel := commandContext()
		defer cancel()

		event, err := client.AcknowledgeEvent(ctx, args[0])
		if err != nil {
			return err
		}
		return printJSON(event)
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <event-id>",
	Short: "Delete an event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		ctx, cancel := commandContext()
		defer cancel()

		if err := client.DeleteEvent(ctx, args[0]); err != nil {
			return err
		}
		return printJSON(map[string]bool{"deleted": true})
	},
}

var waitCmd = &cobra.Command{
	Use:   "wait",
	Short: "Wait for a matching event to arrive",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		var opts []triggers.WaitOption
		if waitSource != "" {
			opts = append(opts, triggers.WithMatchingSource(waitSource))
		}
		if waitType != "" {
			opts = append(opts, triggers.WithMatchingEventType(waitType))
		}
		opts = append(opts,
			triggers.WithWaitTimeout(waitTimeout),
			triggers.WithPollInterval(pollInterval),
		)

		event, err := client.WaitForEvent(context.Background(), opts...)
		if err != nil {
			return err
		}
		return printJSON(event)
	},
}

func init() {
	createCmd.Flags().StringVar(&createSource, "source", "", "Event source (required)")
	createCmd.Flags().StringVar(&createType, "type", "", "Event type (required)")
	createCmd.Flags().StringVar(&createPayload, "payload", "", "Event payload as JSON")
	createCmd.Flags().StringArrayVar(&createMetadata, "metadata", nil, "Metadata entry key=value (repeatable)")
	_ = createCmd.MarkFlagRequired("source")
	_ = createCmd.MarkFlagRequired("type")

	listCmd.Flags().StringVar(&listSource, "source", "", "Filter by event source")
	listCmd.Flags().StringVar(&listType, "type", "", "Filter by event type")
	listCmd.Flags().StringVar(&listStatus, "status", "", "Filter by status (pending|acknowledged)")
	listCmd.Flags().StringVar(&listCursor, "cursor", "", "Resume from an opaque cursor")
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "Page size (server bounds 1-100)")
	listCmd.Flags().BoolVar(&listAll, "all", false, "Follow cursors until the listing is exhausted")

	waitCmd.Flags().StringVar(&waitSource, "source", "", "Match only events from this source")
	waitCmd.Flags().StringVar(&waitType, "type", "", "Match only events of this type")
	waitCmd.Flags().DurationVar(&waitTimeout, "wait-timeout", 60*time.Second, "How long to wait")
	waitCmd.Flags().DurationVar(&pollInterval, "poll-interval", 2*time.Second, "Inbox polling interval")
}

// commandContext returns a context bounded by the global timeout flag plus
// headroom for retries the caller may have enabled.
func commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout+30*time.Second)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
