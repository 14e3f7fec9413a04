package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/dmitrijs2005/founderhub/internal/client/api"
)

const timeLayout = "2006-01-02 15:04"

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format(timeLayout)
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	return table
}

func renderFounders(w io.Writer, founders []api.Founder) {
	if len(founders) == 0 {
		fmt.Fprintln(w, "No founders found")
		return
	}
	table := newTable(w, "ID", "Name", "Stage", "Industry", "Looking for", "Country", "Online")
	for _, f := range founders {
		table.Append([]string{itoa(f.ID), f.Name, f.Stage, f.Industry, f.LookingFor, f.Country, yesNo(f.Online)})
	}
	table.Render()
}

func renderFounder(w io.Writer, f *api.Founder) {
	table := newTable(w, "Field", "Value")
	table.Append([]string{"ID", itoa(f.ID)})
	table.Append([]string{"Name", f.Name})
	for _, row := range [][2]string{
		{"Username", f.Username},
		{"Email", f.Email},
		{"Country", f.Country},
		{"Timezone", f.Timezone},
		{"Stage", f.Stage},
		{"Industry", f.Industry},
		{"Skills", strings.Join(f.Skills, ", ")},
		{"Looking for", f.LookingFor},
		{"Personality", strings.Join(f.Personality, ", ")},
		{"Current goal", f.CurrentGoal},
		{"Bio", f.Bio},
		{"Image", f.ProfileImage},
	} {
		if row[1] != "" {
			table.Append(row[:])
		}
	}
	table.Append([]string{"Online", yesNo(f.Online)})
	table.Render()
}

func renderIdeas(w io.Writer, ideas []api.Idea) {
	if len(ideas) == 0 {
		fmt.Fprintln(w, "No ideas yet")
		return
	}
	table := newTable(w, "ID", "Title", "Stage", "Industry", "Upvotes", "Comments", "Author")
	for _, i := range ideas {
		table.Append([]string{itoa(i.ID), i.Title, i.Stage, i.Industry, strconv.Itoa(i.Upvotes),
			strconv.Itoa(i.CommentsCount), i.Author})
	}
	table.Render()
}

func renderComments(w io.Writer, comments []api.Comment) {
	if len(comments) == 0 {
		fmt.Fprintln(w, "No comments yet")
		return
	}
	table := newTable(w, "ID", "Author", "Comment", "Date")
	for _, c := range comments {
		table.Append([]string{itoa(c.ID), c.Author, c.Content, formatTime(c.CreatedAt)})
	}
	table.Render()
}

func renderRooms(w io.Writer, rooms []api.Room) {
	if len(rooms) == 0 {
		fmt.Fprintln(w, "No rooms")
		return
	}
	table := newTable(w, "ID", "Name", "Topic", "Members", "Active")
	for _, r := range rooms {
		table.Append([]string{itoa(r.ID), r.Name, r.Topic, strconv.Itoa(r.MembersCount), yesNo(r.Active)})
	}
	table.Render()
}

// renderRoomMessages prints one line per message, the way a chat scrolls.
func renderRoomMessages(w io.Writer, msgs []api.RoomMessage) {
	for _, m := range msgs {
		fmt.Fprintf(w, "[%s] %s: %s\n", m.CreatedAt.Local().Format("15:04"), m.Sender, m.Content)
	}
}

func renderConnections(w io.Writer, conns []api.Connection) {
	if len(conns) == 0 {
		fmt.Fprintln(w, "No connections yet")
		return
	}
	table := newTable(w, "ID", "From", "To", "Status", "Message")
	for _, c := range conns {
		table.Append([]string{itoa(c.ID), itoa(c.FromFounder), itoa(c.ToFounder), c.Status, c.Message})
	}
	table.Render()
}

func renderMessages(w io.Writer, msgs []api.Message) {
	if len(msgs) == 0 {
		fmt.Fprintln(w, "No messages")
		return
	}
	table := newTable(w, "ID", "From", "To", "Message", "Read", "Date")
	for _, m := range msgs {
		table.Append([]string{itoa(m.ID), itoa(m.Sender), itoa(m.Recipient), m.Content, yesNo(m.Read),
			formatTime(m.CreatedAt)})
	}
	table.Render()
}

func renderProgress(w io.Writer, updates []api.ProgressUpdate) {
	if len(updates) == 0 {
		fmt.Fprintln(w, "No progress updates yet")
		return
	}
	table := newTable(w, "ID", "Title", "Description", "Date")
	for _, p := range updates {
		table.Append([]string{itoa(p.ID), p.Title, p.Description, formatTime(p.CreatedAt)})
	}
	table.Render()
}
