package store

import (
	"context"
	"time"
)

type seedPost struct {
	input     BlogPostInput
	createdAt time.Time
}

// Seeded builds a store preloaded with the fixed sample blog posts. The
// timestamps are fixed so list ordering is stable across restarts.
func Seeded(loc *time.Location, opts ...Option) *Store {
	if loc == nil {
		loc = time.UTC
	}

	seeds := []seedPost{
		{
			createdAt: time.Date(2025, 5, 12, 9, 30, 0, 0, loc),
			input: BlogPostInput{
				Title:    "Estate Planning Essentials: Protecting Your Family's Future",
				Slug:     "estate-planning-essentials-protecting-family-future",
				Excerpt:  "A will is only the starting point. Powers of attorney for property and personal care decide who acts for you while you are alive.",
				Content:  "Most people put off estate planning because it feels morbid or complicated. In practice a complete plan rests on three documents: a will, a continuing power of attorney for property, and a power of attorney for personal care.\n\nYour will controls what happens after death. The two powers of attorney control what happens while you are alive but unable to act, which statistically is the more likely scenario during your working years. Without them, your family may need a court-appointed guardianship to pay your mortgage from your own account.\n\nReview the plan after every major life event: marriage, separation, a new child, a property purchase, or a move between provinces. An out-of-date beneficiary designation can quietly undo an otherwise careful will.",
				Category: "Wills & Power of Attorney",
				Tags:     []string{"estate-planning", "wills", "power-of-attorney"},
				Published: true,
			},
		},
		{
			createdAt: time.Date(2025, 6, 30, 14, 0, 0, 0, loc),
			input: BlogPostInput{
				Title:    "The LMIA Process Explained: What Employers and Workers Should Expect",
				Slug:     "lmia-process-explained-employers-workers",
				Excerpt:  "A Labour Market Impact Assessment is the employer's burden, but the worker's timeline. Here is how the pieces fit together.",
				Content:  "A positive Labour Market Impact Assessment tells the government that hiring a foreign worker will not displace Canadian labour. The employer applies, advertises the position for the required period, and answers questions about wages and recruitment effort.\n\nFor the worker, nothing can be filed until the LMIA decision arrives, so realistic planning treats the assessment as the critical path. Processing times vary widely by stream; the high-wage and low-wage streams carry different advertising and cap rules.\n\nOnce a positive assessment issues, the worker applies for the work permit with the LMIA number and the employer's offer of employment. Errors at this second stage are the most common cause of avoidable refusals.",
				Category: "Immigration",
				Tags:     []string{"lmia", "work-permits", "employers"},
				Published: true,
			},
		},
		{
			createdAt: time.Date(2025, 8, 15, 11, 15, 0, 0, loc),
			input: BlogPostInput{
				Title:    "Closing Day Without Surprises: A First-Time Buyer's Checklist",
				Slug:     "closing-day-checklist-first-time-buyers",
				Excerpt:  "The week before closing is when small oversights become expensive. What your real estate lawyer verifies, and what you should.",
				Content:  "Title searches, tax certificates, and utility holdbacks are your lawyer's job. Yours is simpler but just as important: confirm the closing funds early, keep the deposit paper trail, and do the final walkthrough the day before, not the day of.\n\nBridge financing deserves a mention. If your sale and purchase close on different days, arrange the bridge well before the week of closing; lenders are slow with it and nothing on the purchase side can move without funds.\n\nFinally, read the statement of adjustments when it arrives rather than at the signing table. Prepaid property taxes and fuel adjustments are routine, but they should never be a surprise.",
				Category: "Real Estate",
				Tags:     []string{"real-estate", "closing", "first-time-buyers"},
				Published: true,
			},
		},
	}

	s := New(opts...)
	base := s.now
	for _, seed := range seeds {
		at := seed.createdAt
		s.now = func() time.Time { return at }
		s.CreateBlogPost(context.Background(), seed.input)
	}
	s.now = base
	return s
}
