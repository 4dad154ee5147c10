package quote

import (
	"strings"

	"github.com/leafilms/docgen/model"
)

// termsTemplate is the terms text with travel costs included, plus the one
// clause that changes when travel is excluded.
type termsTemplate struct {
	text     string
	included string
	excluded string
}

func (t termsTemplate) render(includeTravel bool) string {
	if includeTravel {
		return t.text
	}
	return strings.Replace(t.text, t.included, t.excluded, 1)
}

var termsTemplates = map[model.Language]termsTemplate{
	model.NO: {text: termsNO, included: "er inkludert i budsjettet", excluded: "er ikke inkludert i budsjettet"},
	model.EN: {text: termsEN, included: "are included in the budget", excluded: "are not included in the budget"},
}

// Terms returns the localized terms and conditions.
func Terms(lang model.Language, includeTravel bool) string {
	t, ok := termsTemplates[lang]
	if !ok {
		t = termsTemplates[model.NO]
	}
	return t.render(includeTravel)
}

const termsEN = "Leafilms will be responsible for the overall planning, production, and delivery of the project as outlined in this offer.\n" +
	"The project scope, timeline, and deliverables will be agreed upon before production begins. Any changes to the " +
	"scope during the project may incur additional costs and require a written agreement.\n\n" +
	"Travel, accommodation, and subsistence costs for the crew are included in the budget unless otherwise specified.\n\n" +
	"If unforeseen circumstances (e.g., severe weather or other factors beyond Leafilms' control) prevent production " +
	"from proceeding as planned, alternative arrangements will be made in consultation with the client. Any delays or " +
	"rescheduling may incur additional costs.\n\n" +
	"Cancellation within 14 days before the start date: 50% of the agreed price will be invoiced.\n" +
	"Cancellation within 48 hours before the start date: 100% of the agreed price will be invoiced.\n\n" +
	"The client is granted full copyright ownership and an unlimited commercial license for all produced content. " +
	"Leafilms retains the right to use the content for its own marketing purposes. " +
	"Leafilms must be credited in accordance with industry standards wherever the material is used, where practical.\n\n" +
	"All materials, including footage and project files, will be delivered to the client as agreed. Storage and archiving of " +
	"the material beyond the delivery date are the responsibility of the client.\n\n" +
	"The invoice is split into two equal payments. The first half will be issued upon signing the production agreement, " +
	"and the second half will be issued after the final production day. Please be aware that late payments may incur " +
	"additional fees."

const termsNO = "Leafilms vil være ansvarlig for planleggingen, produksjonen og leveringen av prosjektet slik det er beskrevet i dette tilbudet.\n" +
	"Prosjektets omfang, tidslinje og leveranser avtales før produksjonen starter. Eventuelle endringer i omfanget underveis kan medføre ekstra kostnader.\n\n" +
	"Reise-, overnattings- og oppholdsutgifter for teamet er inkludert i budsjettet med mindre annet er spesifisert.\n\n" +
	"Dersom uforutsette omstendigheter (f.eks. ekstremvær eller andre faktorer utenfor Leafilms' kontroll) hindrer produksjonen i å gjennomføres som planlagt, " +
	"vil alternative løsninger utarbeides i samråd med kunden. Eventuelle forsinkelser eller omlegginger kan medføre ekstra kostnader.\n\n" +
	"Kansellering innen 14 dager før startdato: 50 % av den avtalte prisen vil bli fakturert.\n" +
	"Kansellering innen 48 timer før startdato: 100 % av den avtalte prisen vil bli fakturert.\n\n" +
	"Leafilms beholder full opphavsrett til alt produsert materiale. Kunden gis bruksrettigheter for det avtalte formålet og prosjektet. " +
	"Videre salg eller distribusjon er ikke tillatt uten skriftlig samtykke fra Leafilms. Leafilms må krediteres i henhold til bransjestandarder " +
	"der materialet brukes, der det er praktisk mulig.\n\n" +
	"Alt materiale, inkludert opptak og prosjektfiler, vil bli levert til kunden som avtalt. Lagring og arkivering av materialet utover leveringsdatoen er kundens ansvar.\n\n" +
	"Fakturaen deles opp i to like betalinger. Den første halvparten faktureres ved signering av produksjonsavtalen, og den andre halvparten faktureres etter siste produksjonsdag. " +
	"Vær oppmerksom på at forsinkede betalinger kan medføre ekstra gebyrer."
