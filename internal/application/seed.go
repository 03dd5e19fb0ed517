package application

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"projecthub/internal/domain"
	"projecthub/internal/ports/input"
)

type sampleProject struct {
	owner int
	input.NewProject
}

var (
	sampleEntrepreneurs = []input.NewEntrepreneur{
		{FullName: "Dr. Carlos Mendes", Email: "carlos@veterinaria.com", Phone: "(11) 99999-9999", Company: "Clínica Veterinária São Paulo"},
		{FullName: "Ana Silva", Email: "ana@nutricaovida.com", Phone: "(11) 88888-8888", Company: "Nutrição & Vida Ltda"},
		{FullName: "Roberto Santos", Email: "roberto@edutech.com", Phone: "(11) 77777-7777", Company: "EduTech Solutions"},
	}

	sampleProjects = []sampleProject{
		{owner: 0, NewProject: input.NewProject{
			Title:        "Sistema de Gestão para Clínica Veterinária",
			Description:  "Desenvolvimento de sistema web para gestão completa de clínica veterinária, incluindo cadastro de pets, agendamento de consultas, prontuário eletrônico e controle financeiro. Necessário experiência com banco de dados.",
			ProjectType:  domain.ProjectTypeWebSystem,
			BusinessArea: "saude",
			Deadline:     domain.Deadline3To6Months,
			Complexity:   domain.ComplexityIntermediate,
			Technologies: []string{"React", "Node.js", "MySQL", "API REST"},
		}},
		{owner: 1, NewProject: input.NewProject{
			Title:        "App Mobile para Delivery de Comida Saudável",
			Description:  "Aplicativo mobile para delivery de refeições saudáveis com sistema de recomendação personalizada, integração com pagamento e GPS para tracking de entrega. Foco em UX/UI intuitiva.",
			ProjectType:  domain.ProjectTypeMobileApp,
			BusinessArea: "comercio",
			Deadline:     domain.Deadline3To6Months,
			Complexity:   domain.ComplexityAdvanced,
			Technologies: []string{"React Native", "Firebase", "Maps API", "Payment Gateway"},
		}},
		{owner: 2, NewProject: input.NewProject{
			Title:        "Landing Page para Startup de EdTech",
			Description:  "Criação de landing page moderna e responsiva para captação de leads de startup focada em soluções educacionais. Necessário conhecimento em design UI/UX e otimização para conversão.",
			ProjectType:  domain.ProjectTypeLandingPage,
			BusinessArea: "educacao",
			Deadline:     domain.Deadline1Month,
			Complexity:   domain.ComplexityBasic,
			Technologies: []string{"HTML/CSS", "JavaScript", "WordPress", "SEO"},
		}},
	}

	sampleEvents = []input.NewEvent{
		{
			Title:       "Demo Day - 1º Semestre 2024",
			Description: "Apresentação dos projetos desenvolvidos durante o semestre e networking entre empreendedores, estudantes e profissionais da área.",
			Date:        time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
			StartTime:   "14:00",
			EndTime:     "18:00",
			Location:    "Auditório Fatec Zona Leste",
		},
	}
)

// SeedSampleData registers the demo entrepreneurs, their projects and the
// demo event. It is a no-op when the first sample account already exists.
func SeedSampleData(ctx context.Context, reg input.RegistrationUseCase, projects input.ProjectUseCase, events input.EventUseCase) error {
	ids := make([]string, 0, len(sampleEntrepreneurs))
	for i, in := range sampleEntrepreneurs {
		e, err := reg.RegisterEntrepreneur(ctx, in)
		if err != nil {
			if i == 0 && errors.Is(err, domain.ErrUsernameTaken) {
				log.Println("⚠️ Sample data already present, skipping seed.")
				return nil
			}
			return fmt.Errorf("seed entrepreneur %s: %w", in.Email, err)
		}
		ids = append(ids, e.ID)
	}
	for _, sp := range sampleProjects {
		np := sp.NewProject
		np.EntrepreneurID = ids[sp.owner]
		if _, err := projects.CreateProject(ctx, np); err != nil {
			return fmt.Errorf("seed project %q: %w", np.Title, err)
		}
	}
	for _, ev := range sampleEvents {
		if _, err := events.CreateEvent(ctx, ev); err != nil {
			return fmt.Errorf("seed event %q: %w", ev.Title, err)
		}
	}
	log.Printf("✅ Sample data loaded (%d entrepreneurs, %d projects, %d events).",
		len(sampleEntrepreneurs), len(sampleProjects), len(sampleEvents))
	return nil
}
