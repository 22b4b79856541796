package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/campusmesh/portal-api/internal/models"
	"github.com/campusmesh/portal-api/internal/repository"
)

// SeedService populates the reference catalogs on first run. Each catalog is
// written only when its entry is absent, so admin edits survive restarts.
type SeedService interface {
	EnsureDefaults(ctx context.Context) error
}

type seedService struct {
	catalogRepo repository.CatalogRepository
	logger      zerolog.Logger
}

// NewSeedService constructs the seeding service.
func NewSeedService(catalogRepo repository.CatalogRepository, logger zerolog.Logger) SeedService {
	return &seedService{
		catalogRepo: catalogRepo,
		logger:      logger.With().Str("component", "seed_service").Logger(),
	}
}

func (s *seedService) EnsureDefaults(ctx context.Context) error {
	if _, found, err := s.catalogRepo.Courses(ctx); err != nil {
		return err
	} else if !found {
		if err := s.catalogRepo.SaveCourses(ctx, defaultCourses()); err != nil {
			return err
		}
		s.logger.Info().Msg("course catalog seeded")
	}

	if _, found, err := s.catalogRepo.Notices(ctx); err != nil {
		return err
	} else if !found {
		if err := s.catalogRepo.SaveNotices(ctx, defaultNotices()); err != nil {
			return err
		}
		s.logger.Info().Msg("notices seeded")
	}

	if _, found, err := s.catalogRepo.Books(ctx); err != nil {
		return err
	} else if !found {
		if err := s.catalogRepo.SaveBooks(ctx, defaultBooks()); err != nil {
			return err
		}
		s.logger.Info().Msg("book catalog seeded")
	}

	if _, found, err := s.catalogRepo.Assignments(ctx); err != nil {
		return err
	} else if !found {
		if err := s.catalogRepo.SaveAssignments(ctx, defaultAssignments()); err != nil {
			return err
		}
		s.logger.Info().Msg("assignments seeded")
	}

	if _, found, err := s.catalogRepo.Events(ctx); err != nil {
		return err
	} else if !found {
		if err := s.catalogRepo.SaveEvents(ctx, defaultEvents()); err != nil {
			return err
		}
		s.logger.Info().Msg("events seeded")
	}

	return nil
}

func defaultCourses() []models.Course {
	return []models.Course{
		{Code: "CS101", Name: "Introduction to Programming", Credits: 3, Schedule: models.Schedule{Day: "Monday", Time: "09:00-10:00"}},
		{Code: "MA101", Name: "Calculus I", Credits: 4, Schedule: models.Schedule{Day: "Tuesday", Time: "10:00-11:00"}},
		{Code: "PH101", Name: "Physics I", Credits: 3, Schedule: models.Schedule{Day: "Wednesday", Time: "11:00-12:00"}},
		{Code: "EC101", Name: "Electronics Fundamentals", Credits: 3, Schedule: models.Schedule{Day: "Thursday", Time: "14:00-15:00"}},
		{Code: "HS101", Name: "Humanities and Social Sciences", Credits: 2, Schedule: models.Schedule{Day: "Friday", Time: "15:00-16:00"}},
		{Code: "CY101", Name: "Chemistry", Credits: 3, Schedule: models.Schedule{Day: "Monday", Time: "14:00-15:00"}},
	}
}

func defaultNotices() []models.Notice {
	return []models.Notice{
		{Title: "Course Registration Opens", Content: "The registration window for the upcoming semester opens on September 10, 2025. Visit the Course Registration page to select your courses before the deadline.", Date: "September 1, 2025"},
		{Title: "Midterm Exam Schedule Released", Content: "The examination office has published the midterm exam timetable. You can view your personalized schedule under the Results page. Make sure to verify the dates and prepare accordingly.", Date: "August 30, 2025"},
		{Title: "Library Orientation", Content: "A library orientation session will be held on September 15, 2025 to introduce new students to library services, including book reservations and online resources. All students are encouraged to attend.", Date: "August 25, 2025"},
		{Title: "Hackathon Announcement", Content: "The Computer Science department is hosting a 24-hour hackathon on campus from September 20-21, 2025. Teams can register via the departmental website. Prizes will be awarded to the top projects.", Date: "August 20, 2025"},
	}
}

func defaultBooks() []models.Book {
	return []models.Book{
		{ID: 1, Title: "Introduction to Algorithms", Author: "Cormen et al.", Available: true},
		{ID: 2, Title: "Clean Code", Author: "Robert C. Martin", Available: true},
		{ID: 3, Title: "Calculus", Author: "James Stewart", Available: true},
		{ID: 4, Title: "University Physics", Author: "Young & Freedman", Available: true},
		{ID: 5, Title: "Digital Electronics", Author: "R.P. Jain", Available: true},
		{ID: 6, Title: "Philosophy: A Very Short Introduction", Author: "Edward Craig", Available: true},
		{ID: 7, Title: "Organic Chemistry", Author: "L.G. Wade", Available: true},
		{ID: 8, Title: "Modern History", Author: "Norman Lowe", Available: true},
		{ID: 9, Title: "Data Structures and Algorithms in Java", Author: "Goodrich et al.", Available: true},
		{ID: 10, Title: "Artificial Intelligence: A Modern Approach", Author: "Russell & Norvig", Available: true},
	}
}

func defaultAssignments() models.AssignmentBook {
	return models.AssignmentBook{
		"CS101": {{ID: 1, Title: "Programming Assignment 1", Due: "2025-10-01"}},
		"MA101": {{ID: 1, Title: "Calculus Homework 1", Due: "2025-09-25"}},
		"PH101": {{ID: 1, Title: "Physics Lab Report", Due: "2025-10-05"}},
		"EC101": {{ID: 1, Title: "Electronics Project Proposal", Due: "2025-10-10"}},
		"HS101": {{ID: 1, Title: "Essay on Social Sciences", Due: "2025-09-30"}},
		"CY101": {{ID: 1, Title: "Chemistry Lab Assignment", Due: "2025-09-28"}},
	}
}

func defaultEvents() []models.Event {
	return []models.Event{
		{ID: 1, Title: "Freshers Orientation", Date: "2025-09-15", Time: "10:00", Description: "Orientation program for new students.", Type: "Event"},
		{ID: 2, Title: "Midterm Exams Begin", Date: "2025-10-10", Time: "09:00", Description: "Midterm examinations commence for all courses.", Type: "Exam"},
		{ID: 3, Title: "Hackathon", Date: "2025-09-20", Time: "09:00", Description: "24-hour hackathon hosted by the CS department.", Type: "Event"},
	}
}
