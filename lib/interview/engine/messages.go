package engine

const msgWelcome = `Hello and welcome to the TalentScout screening assistant!

I'm here to help with your initial screening for technology positions. I'll gather some basic information about you and then ask a few technical questions based on your expertise.

This should take about 5-10 minutes. You can end our conversation anytime by typing 'exit'.

Let's get started! What's your full name?`

const msgTechStackPrompt = `Now for the technical part!

Please tell me about your tech stack: the programming languages, frameworks, databases and tools you're proficient in.

For example: "Python, Django, React, PostgreSQL, AWS, Docker"`

const msgTechStackRetry = `I couldn't identify specific technologies. Please mention specific programming languages, frameworks or tools you know (e.g. Python, React, MySQL).`

const msgQuestionsDoneFmt = `Excellent! You've completed all %d technical question(s).

Thank you for taking the time to complete this screening! Our recruitment team will review your responses and contact you within 2-3 business days if your profile matches our current openings.

Type 'goodbye' to end our conversation.`

const msgConclusion = `Thank you for your interest in TalentScout!

Your information has been recorded and our team will be in touch soon.

Have a wonderful day, and good luck with your job search!`

const msgFarewell = `Thank you for your time! Have a great day!

Our recruitment team will review the information you provided and get back to you if your profile matches our current openings.`

const msgApology = `I apologize for the technical issue. Please try rephrasing your response or type 'exit' to end our conversation.`
