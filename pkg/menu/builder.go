package menu

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mchmarny/sidebar/pkg/content"
	"github.com/mchmarny/sidebar/pkg/contenttype"
	"github.com/mchmarny/sidebar/pkg/i18n"
	"github.com/mchmarny/sidebar/pkg/metric"
	"github.com/mchmarny/sidebar/pkg/routing"
)

const (
	// LatestLimit is the number of record previews per content type section.
	LatestLimit = 5

	// ActiveSlug is the content type section rendered as active.
	ActiveSlug = "pages"

	SpanSidebar     = "menu.sidebar"
	SpanFindLatest  = "menu.find_latest"
	SpanParseLatest = "menu.parse_latest"
)

// ContentTypes is the configured set of content types.
type ContentTypes interface {
	All() []contenttype.ContentType
	Get(slug string) (contenttype.ContentType, error)
}

// Summaries finds recent records and resolves their display fields.
type Summaries interface {
	FindLatest(ctx context.Context, ct contenttype.ContentType, limit int) ([]content.Record, error)
	Title(r content.Record) string
	Link(r content.Record) (string, error)
	EditLink(r content.Record) (string, error)
}

// Builder assembles the admin sidebar tree.
type Builder struct {
	types     ContentTypes
	links     routing.Generator
	tr        i18n.Translator
	summaries Summaries
	stopwatch metric.Stopwatch
	logger    *slog.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithStopwatch sets the timing sink. Defaults to metric.NopStopwatch.
func WithStopwatch(sw metric.Stopwatch) Option {
	return func(b *Builder) { b.stopwatch = sw }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) { b.logger = l }
}

// NewBuilder creates a sidebar builder over its collaborators.
func NewBuilder(types ContentTypes, links routing.Generator, tr i18n.Translator, summaries Summaries, opts ...Option) *Builder {
	b := &Builder{
		types:     types,
		links:     links,
		tr:        tr,
		summaries: summaries,
		stopwatch: metric.NopStopwatch{},
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Menu builds the sidebar and flattens it into sections.
func (b *Builder) Menu(ctx context.Context) ([]Section, error) {
	root, err := b.Sidebar(ctx)
	if err != nil {
		return nil, err
	}
	return Flatten(root), nil
}

// entry is a fixed leaf of a settings section.
type entry struct {
	key     string
	caption string
	icon    string
	typ     string
	route   string
	params  routing.Params
	pending bool
}

// Sidebar builds the menu tree.
func (b *Builder) Sidebar(ctx context.Context) (*Node, error) {
	span := b.stopwatch.Start(SpanSidebar)
	defer span.Stop()

	root := NewRoot()

	dashboard, err := b.link(routing.Dashboard, nil)
	if err != nil {
		return nil, err
	}
	if _, err := root.AddChild("Dashboard", Item{
		URI:    dashboard,
		Extras: Extras{Name: b.tr.Translate("caption.dashboard"), Icon: "fa-tachometer-alt"},
	}); err != nil {
		return nil, err
	}

	if _, err := root.AddChild("Content", Item{Extras: Extras{
		Name: b.tr.Translate("caption.content"),
		Type: "separator",
		Icon: "fa-file",
	}}); err != nil {
		return nil, err
	}

	for _, ct := range b.types.All() {
		if err := b.addContentType(ctx, root, ct); err != nil {
			return nil, err
		}
	}

	if _, err := root.AddChild("Settings", Item{Extras: Extras{
		Name: b.tr.Translate("caption.settings"),
		Type: "separator",
		Icon: "fa-wrench",
	}}); err != nil {
		return nil, err
	}

	if err := b.addSection(root, "Configuration", "caption.configuration", "fa-sliders-h", []entry{
		{key: "Users & Permissions", caption: "caption.users_permissions", icon: "fa-users", route: routing.Users},
		{key: "Main configuration", caption: "caption.main_configuration", icon: "fa-cog", route: routing.FileEdit, params: configFile("/bolt/config.yaml")},
		{key: "ContentTypes", caption: "caption.contenttypes", icon: "fa-object-group", route: routing.FileEdit, params: configFile("/bolt/contenttypes.yaml")},
		{key: "Taxonomies", caption: "caption.taxonomies", icon: "fa-tags", route: routing.FileEdit, params: configFile("/bolt/taxonomy.yaml")},
		{key: "Menu set up", caption: "caption.menu_setup", icon: "fa-list", typ: "separator", route: routing.FileEdit, params: configFile("/bolt/menu.yaml")},
		{key: "Routing set up", caption: "caption.routing_setup", icon: "fa-directions", route: routing.FileEdit, params: configFile("/routes.yaml")},
		{key: "All configuration files", caption: "caption.all_configuration_files", icon: "fa-cogs", route: routing.FileManager, params: routing.Params{"area": "config"}},
	}); err != nil {
		return nil, err
	}

	if err := b.addSection(root, "Maintenance", "caption.maintenance", "fa-tools", []entry{
		{key: "Bolt API", caption: "caption.api", icon: "fa-code", route: routing.APIEntrypoint},
		{key: "Check database", caption: "caption.check_database", icon: "fa-database", pending: true},
		{key: "Fixtures", caption: "caption.fixtures_dummy_content", icon: "fa-hat-wizard", pending: true},
		{key: "Clear the cache", caption: "caption.clear_cache", icon: "fa-eraser", route: routing.ClearCache},
		{key: "Installation checks", caption: "caption.installation_checks", icon: "fa-clipboard-check", pending: true},
		{key: "Translations: Messages", caption: "caption.translations", icon: "fa-language", route: routing.TranslationIndex},
		{key: "Extensions", caption: "caption.extensions", icon: "fa-plug", pending: true},
		// TODO: move the kitchensink out of the main menu before a stable release
		{key: "The Kitchensink", caption: "caption.kitchensink", icon: "fa-bath", route: routing.Kitchensink},
		{key: "About Bolt", caption: "caption.about_bolt", icon: "fa-award", route: routing.About},
	}); err != nil {
		return nil, err
	}

	if err := b.addSection(root, "File Management", "caption.file_management", "fa-folder-open", []entry{
		{key: "Uploaded files", caption: "caption.uploaded_files", icon: "fa-archive", route: routing.FileManager, params: routing.Params{"area": "files"}},
		{key: "View/edit Templates", caption: "caption.view_edit_templates", icon: "fa-scroll", route: routing.FileManager, params: routing.Params{"area": "themes"}},
	}); err != nil {
		return nil, err
	}

	b.logger.Debug("sidebar built", "sections", len(root.Children()))

	return root, nil
}

func (b *Builder) addContentType(ctx context.Context, root *Node, ct contenttype.ContentType) error {
	params := routing.Params{"contentType": ct.Slug}

	overview, err := b.link(routing.ContentOverview, params)
	if err != nil {
		return err
	}

	linkNew, err := b.link(routing.ContentNew, params)
	if err != nil {
		return err
	}

	latest, err := b.LatestRecords(ctx, ct.Slug)
	if err != nil {
		return err
	}

	// Only "pages" is ever marked active. This is a fixed special case
	// and not derived from the current request.
	active := ct.Slug == ActiveSlug
	singleton := ct.Singleton

	_, err = root.AddChild(ct.Slug, Item{
		URI: overview,
		Extras: Extras{
			Name:         ct.Name,
			SingularName: ct.SingularName,
			Slug:         ct.Slug,
			SingularSlug: ct.SingularSlug,
			Icon:         ct.IconMany,
			LinkNew:      linkNew,
			ContentType:  ct.Slug,
			Singleton:    &singleton,
			Active:       &active,
			Submenu:      latest,
		},
	})
	return err
}

func (b *Builder) addSection(root *Node, key, caption, icon string, entries []entry) error {
	section, err := root.AddChild(key, Item{Extras: Extras{
		Name: b.tr.Translate(caption),
		Icon: icon,
	}})
	if err != nil {
		return err
	}

	for _, e := range entries {
		uri := Pending()
		if !e.pending {
			if uri, err = b.link(e.route, e.params); err != nil {
				return err
			}
		}

		if _, err := section.AddChild(e.key, Item{
			URI: uri,
			Extras: Extras{
				Name: b.tr.Translate(e.caption),
				Icon: e.icon,
				Type: e.typ,
			},
		}); err != nil {
			return err
		}
	}

	return nil
}

// LatestRecords returns previews of the most recently modified records of
// the content type, at most LatestLimit, in the order the summaries service
// returns them. Unknown slugs are a configuration error.
func (b *Builder) LatestRecords(ctx context.Context, slug string) ([]RecordSummary, error) {
	ct, err := b.types.Get(slug)
	if err != nil {
		return nil, fmt.Errorf("latest records: %w", err)
	}

	find := b.stopwatch.Start(SpanFindLatest)
	records, err := b.summaries.FindLatest(ctx, ct, LatestLimit)
	find.Stop()
	if err != nil {
		return nil, fmt.Errorf("latest records for %s: %w", slug, err)
	}

	if len(records) > LatestLimit {
		records = records[:LatestLimit]
	}

	parse := b.stopwatch.Start(SpanParseLatest)
	defer parse.Stop()

	out := make([]RecordSummary, 0, len(records))
	for _, r := range records {
		link, err := b.summaries.Link(r)
		if err != nil {
			return nil, fmt.Errorf("link for %s %d: %w", slug, r.ID, err)
		}

		edit, err := b.summaries.EditLink(r)
		if err != nil {
			return nil, fmt.Errorf("edit link for %s %d: %w", slug, r.ID, err)
		}

		out = append(out, RecordSummary{
			ID:       r.ID,
			Name:     b.summaries.Title(r),
			Link:     link,
			EditLink: edit,
			Icon:     r.Icon,
		})
	}

	return out, nil
}

func (b *Builder) link(route string, params routing.Params) (Link, error) {
	u, err := b.links.Generate(route, params)
	if err != nil {
		return Link{}, fmt.Errorf("generate %s: %w", route, err)
	}
	return URL(u), nil
}

func configFile(path string) routing.Params {
	return routing.Params{"area": "config", "file": path}
}
