package dataset

import (
	coalcheck "github.com/coalwatch/coalcheck"
	"github.com/coalwatch/coalcheck/countries"
	"github.com/coalwatch/coalcheck/dsl"
	"github.com/coalwatch/coalcheck/rules"
)

var newsRegionEnum = dsl.EnumOf("Africa", "Americas", "Asia", "Europe", "Oceania")

// articleIDList is a feed of article references: every entry tagged with its
// source, no repeats.
var articleIDList = dsl.ArrayOf(dsl.String()).
	Rule("article_id_format", rules.Each(rules.ArticleID)).
	Rule("unique", rules.Unique(rules.Self))

var newsFeedItemSchema = dsl.Object().
	Field("date", dsl.StringOf().Rule("american_date", rules.AmericanDate)).Required().
	Field("title", dsl.StringOf()).Required().
	Field("summary", dsl.StringOf()).Required().
	Field("links", dsl.ArrayOf(dsl.String()).
		Rule("valid_url", rules.Each(rules.ValidURL)).
		Rule("unique", rules.Unique(rules.Self)).
		Rule("min_length", rules.MinLen(1))).Required().
	Field("timestamp", dsl.IntOf()).Required().
	MustBuild()

var countryNewsFeedSchema = dsl.Object().
	Field("region", newsRegionEnum).Required().
	Field("national_article_ids", articleIDList).Required().
	Field("regional_article_ids", articleIDList).Required().
	Field("global_article_ids", articleIDList).Required().
	MustBuild()

// NewsFeed validates the "news_feed" dataset: the global recent-news strip,
// per-country feeds, and the article body index.
var NewsFeed coalcheck.SchemaMap = dsl.Object().
	Field("recent_news_article_ids", articleIDList.Rule("min_length", rules.MinLen(5))).Required().
	Field("countries", dsl.MapOf(dsl.Map(countryNewsFeedSchema).Keys(countries.Codes()))).Required().
	Field("articles", dsl.MapOf(dsl.Map(newsFeedItemSchema)).
		Rule("article_id_keys", rules.Keys(rules.ArticleID)).
		Rule("min_length", rules.MinLen(1))).Required().
	Field("latest_issue", dsl.IntOf()).Required().
	Field("latest_date", dsl.StringOf().Rule("american_date", rules.AmericanDate)).Required().
	Refine("required_countries", rules.At("countries", rules.RequireKeys("id"))).
	MustBuild()

func init() { register("news_feed", NewsFeed) }
