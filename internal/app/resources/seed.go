package resources

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mindwell/mindwell-api/internal/domain"
	"github.com/mindwell/mindwell-api/internal/observability"
)

// SeedIfEmpty inserts the four fixed sample resources when the collection
// holds zero documents. A partially-seeded store is never re-seeded: the
// guard is "empty", not "complete". Two processes racing through a
// first-time startup can both observe empty and both insert; that is
// accepted behavior, not a guarantee this function tries to defend.
func (s *Service) SeedIfEmpty(ctx context.Context) error {
	log := observability.LoggerFromContext(ctx)

	empty, err := s.store.ResourcesEmpty(ctx)
	if err != nil {
		return fmt.Errorf("%w: check resources: %v", domain.ErrStorage, err)
	}
	if !empty {
		log.Info("resource library already populated, skipping seed")
		return nil
	}

	seed := s.sampleResources()
	for _, r := range seed {
		if err := s.store.CreateResource(ctx, r); err != nil {
			return fmt.Errorf("%w: seed resource %q: %v", domain.ErrStorage, r.Title, err)
		}
	}

	log.Info("seeded sample resources", zap.Int("count", len(seed)))
	return nil
}

func (s *Service) sampleResources() []*domain.Resource {
	now := s.now().UTC()

	return []*domain.Resource{
		{
			ID:          s.newID(),
			Title:       "Understanding Anxiety: A Beginner's Guide",
			Category:    "anxiety",
			Description: "Learn the basics of anxiety disorders and how they affect daily life.",
			Content: "Anxiety is a normal human emotion that everyone experiences from time to time. " +
				"However, when anxiety becomes persistent, excessive, and interferes with daily activities, " +
				"it may be classified as an anxiety disorder. Common symptoms include excessive worry, " +
				"restlessness, fatigue, difficulty concentrating, irritability, muscle tension, and sleep " +
				"disturbances. Understanding these symptoms is the first step toward managing anxiety effectively.",
			Timestamp: now,
		},
		{
			ID:          s.newID(),
			Title:       "5-4-3-2-1 Grounding Technique",
			Category:    "coping-strategies",
			Description: "A simple grounding exercise to help manage anxiety and panic.",
			Content: "The 5-4-3-2-1 technique is a grounding exercise that uses your five senses to help you " +
				"focus on the present moment: 5 things you can see, 4 things you can touch, 3 things you can " +
				"hear, 2 things you can smell, and 1 thing you can taste. This technique helps interrupt " +
				"anxious thoughts and brings your attention back to the here and now.",
			Timestamp: now,
		},
		{
			ID:          s.newID(),
			Title:       "Building a Daily Mindfulness Practice",
			Category:    "mindfulness",
			Description: "Simple steps to incorporate mindfulness into your daily routine.",
			Content: "Mindfulness is the practice of paying attention to the present moment without judgment. " +
				"Start with just 5 minutes a day: find a quiet space, focus on your breath, and when your mind " +
				"wanders, gently bring attention back to breathing. You can also practice mindful walking, " +
				"eating, or listening. Consistency is more important than duration.",
			Timestamp: now,
		},
		{
			ID:          s.newID(),
			Title:       "When to Seek Professional Help",
			Category:    "professional-help",
			Description: "Signs that indicate it's time to consult a mental health professional.",
			Content: "Consider seeking professional help if you experience: persistent sadness or anxiety " +
				"lasting more than 2 weeks, difficulty functioning at work or in relationships, thoughts of " +
				"self-harm, substance abuse as a coping mechanism, sleep disturbances, or significant changes " +
				"in appetite. Remember, seeking help is a sign of strength, not weakness.",
			Timestamp: now,
		},
	}
}
